package partition

import "fmt"

// Frequency is the read-only index the search runs on.
//
// Counts[v-1] is the number of teams with strength v, Buckets[v-1] their
// 0-based indices in input order. The buckets partition 0..N-1 and
// Σ Counts == N == M·K.
type Frequency struct {
	N, M, K int
	Total   int
	Counts  [Levels]int
	Buckets [Levels][]int
}

// Index validates (values, m, k) and builds the Frequency index.
//
// Validation order:
//  1. m > 0 and k > 0 (ErrBadShape).
//  2. len(values) == m·k (ErrSizeMismatch).
//  3. every value in [MinLevel, MaxLevel] (ErrLevelOutOfRange).
//
// Complexity: O(n) time and space.
func Index(values []int, m, k int) (*Frequency, error) {
	if m <= 0 || k <= 0 {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrBadShape, m, k)
	}
	n := len(values)
	// n == m·k, tested without multiplying so huge m or k cannot wrap.
	if n%k != 0 || n/k != m {
		return nil, fmt.Errorf("%w: got %d teams, want %d groups of %d", ErrSizeMismatch, n, m, k)
	}

	f := &Frequency{N: n, M: m, K: k}
	var (
		i, v int
	)
	for i, v = range values {
		if v < MinLevel || v > MaxLevel {
			return nil, fmt.Errorf("%w: team %d has strength %d, want %d..%d",
				ErrLevelOutOfRange, i+1, v, MinLevel, MaxLevel)
		}
		f.Counts[v-MinLevel]++
		f.Total += v
	}

	// Second pass with exact capacities; keeps input order inside each bucket.
	var lvl int
	for lvl = 0; lvl < Levels; lvl++ {
		f.Buckets[lvl] = make([]int, 0, f.Counts[lvl])
	}
	for i, v = range values {
		f.Buckets[v-MinLevel] = append(f.Buckets[v-MinLevel], i)
	}

	return f, nil
}

// strength returns the strength value of level slot lvl.
func strength(lvl int) int { return lvl + MinLevel }
