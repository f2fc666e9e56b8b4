package partition

import "fmt"

// backtrack walks back-pointers from node pos of the last layer down to the
// root and returns the decisions in assignment order.
//
// Every node of layer t > 0 points into layer t-1, so the walk takes exactly
// N steps and must end on the root.
//
// Complexity: O(N).
func (tb *table) backtrack(pos int32) []Decision {
	n := tb.freq.N
	moves := make([]Decision, 0, n)

	var (
		t  int
		nd node
	)
	for t = n; t > 0; t-- {
		nd = tb.layers[t].nodes[pos]
		moves = append(moves, Decision{Team: int(nd.team), Closed: nd.closed})
		pos = nd.parent
	}
	if pos != 0 || tb.layers[0].nodes[0].parent != -1 {
		panic(fmt.Errorf("%w: walk ended at layer-0 position %d", ErrInconsistentPath, pos))
	}

	// reverse in place
	var l, r int
	for l, r = 0, len(moves)-1; l < r; l, r = l+1, r-1 {
		moves[l], moves[r] = moves[r], moves[l]
	}

	return moves
}

// fold groups ordered decisions: each team joins the open group, and a
// Closed decision seals it. Team indices are converted to 1-based IDs.
//
// Panics with ErrInconsistentPath if a sealed group does not hold exactly k
// teams, a partial group remains, or the group count differs from m.
//
// Complexity: O(len(moves)).
func fold(moves []Decision, m, k int) [][]int {
	groups := make([][]int, 0, m)
	current := make([]int, 0, k)

	var d Decision
	for _, d = range moves {
		current = append(current, d.Team+1)
		if !d.Closed {
			continue
		}
		if len(current) != k {
			panic(fmt.Errorf("%w: group %d sealed with %d teams, want %d",
				ErrInconsistentPath, len(groups)+1, len(current), k))
		}
		groups = append(groups, current)
		current = make([]int, 0, k)
	}

	if len(current) != 0 {
		panic(fmt.Errorf("%w: %d teams left in an open group", ErrInconsistentPath, len(current)))
	}
	if len(groups) != m {
		panic(fmt.Errorf("%w: got %d groups, want %d", ErrInconsistentPath, len(groups), m))
	}

	return groups
}
