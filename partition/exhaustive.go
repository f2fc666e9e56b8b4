package partition

// ExhaustiveLimit is the largest team count Exhaustive accepts.
const ExhaustiveLimit = 12

// Exhaustive finds an optimal partition by enumerating every way to split
// the teams into m unordered groups of k. It exists as an independent
// reference for Solve on small instances.
//
// Enumeration is canonical: the lowest remaining team always opens the next
// group, and its k−1 companions run through all combinations of the rest in
// lexicographic order. Each unordered partition is therefore visited once.
// The first partition reaching the minimum is kept; branches whose partial
// cost already reaches the best known cost are pruned.
//
// Result.States counts the complete partitions evaluated.
//
// Errors: those of Index, and ErrTooLarge for n > ExhaustiveLimit.
//
// Complexity: O(n!/((k!)^m·m!) · n) time, O(n) extra space per level.
func Exhaustive(values []int, m, k int) (Result, error) {
	f, err := Index(values, m, k)
	if err != nil {
		return Result{}, err
	}
	if f.N > ExhaustiveLimit {
		return Result{}, ErrTooLarge
	}

	ex := &enumerator{values: values, f: f, best: NoCost}
	remaining := make([]int, f.N)
	var i int
	for i = range remaining {
		remaining[i] = i
	}
	ex.recurse(remaining, make([][]int, 0, f.M), 0)

	return Result{
		Groups:   ex.bestGroups,
		Cost:     ex.best,
		Feasible: ex.bestGroups != nil,
		M:        f.M,
		K:        f.K,
		Total:    f.Total,
		States:   ex.evaluated,
	}, nil
}

// enumerator carries the running optimum across the recursion.
type enumerator struct {
	values     []int
	f          *Frequency
	best       int64
	bestGroups [][]int
	evaluated  int
}

// recurse extends current (groups of 0-based indices) with a group opened
// by remaining[0].
func (ex *enumerator) recurse(remaining []int, current [][]int, cost int64) {
	if len(remaining) == 0 {
		ex.evaluated++
		if cost < ex.best {
			ex.best = cost
			ex.bestGroups = toIDs(current)
		}

		return
	}
	if cost >= ex.best {
		return
	}

	head, rest := remaining[0], remaining[1:]
	size := ex.f.K - 1
	r := len(rest)

	// indices walks all size-combinations of rest.
	indices := make([]int, size)
	var i, j int
	for i = range indices {
		indices[i] = i
	}

	var (
		group        []int
		newRemaining []int
		chosen       []bool
		sum          int
	)
	for {
		group = make([]int, 0, ex.f.K)
		group = append(group, head)
		sum = ex.values[head]
		chosen = make([]bool, r)
		for _, i = range indices {
			group = append(group, rest[i])
			sum += ex.values[rest[i]]
			chosen[i] = true
		}
		newRemaining = make([]int, 0, r-size)
		for i = 0; i < r; i++ {
			if !chosen[i] {
				newRemaining = append(newRemaining, rest[i])
			}
		}

		ex.recurse(newRemaining, append(current, group), cost+Imbalance(sum, ex.f.M, ex.f.Total))

		// next combination (lexicographic order)
		i = size - 1
		for ; i >= 0; i-- {
			if indices[i] != i+r-size {
				break
			}
		}
		if i < 0 {
			break
		}
		indices[i]++
		for j = i + 1; j < size; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// toIDs deep-copies groups of 0-based indices into 1-based IDs.
func toIDs(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	var (
		g, i int
	)
	for g = range groups {
		out[g] = make([]int, len(groups[g]))
		for i = range groups[g] {
			out[g][i] = groups[g][i] + 1
		}
	}

	return out
}
