package partition

import (
	"fmt"
	"math/bits"
)

// maxLayerHint caps the per-layer preallocation so that a loose bound on a
// large instance never turns into a huge up-front allocation.
const maxLayerHint = 1 << 16

// state is the DP "progress" value: teams consumed per strength level,
// size of the open group and the strength sum of the open group.
// open == sum == 0 exactly when no group is under construction.
type state struct {
	used [Levels]int
	open int
	sum  int
}

// codec maps a state to a dense mixed-radix key in [0, bound).
//
// Digits, most significant first:
//
//	used[0] … used[Levels-1]  radix Counts[l]+1
//	open                      radix K
//	sum                       radix MaxLevel·(K−1)+1
type codec struct {
	radix [Levels + 2]uint64
	bound uint64
}

// newCodec derives radices from f and computes the state-space bound
// Π(Counts[l]+1) · K · (MaxLevel·(K−1)+1) with overflow detection.
//
// Complexity: O(Levels).
func newCodec(f *Frequency) (codec, error) {
	var c codec
	var lvl int
	for lvl = 0; lvl < Levels; lvl++ {
		c.radix[lvl] = uint64(f.Counts[lvl]) + 1
	}
	c.radix[Levels] = uint64(f.K)
	c.radix[Levels+1] = uint64(MaxLevel*(f.K-1)) + 1

	var (
		hi, lo uint64
		prod   uint64 = 1
		r      uint64
	)
	for _, r = range c.radix {
		hi, lo = bits.Mul64(prod, r)
		if hi != 0 {
			return codec{}, fmt.Errorf("%w: n=%d k=%d", ErrStateSpaceOverflow, f.N, f.K)
		}
		prod = lo
	}
	c.bound = prod

	return c, nil
}

// key encodes s. Digits are assumed to be within their radices.
func (c codec) key(s state) uint64 {
	var (
		k   uint64
		lvl int
	)
	for lvl = 0; lvl < Levels; lvl++ {
		k = k*c.radix[lvl] + uint64(s.used[lvl])
	}
	k = k*c.radix[Levels] + uint64(s.open)
	k = k*c.radix[Levels+1] + uint64(s.sum)

	return k
}

// decode is the inverse of key.
func (c codec) decode(k uint64) state {
	var s state
	s.sum = int(k % c.radix[Levels+1])
	k /= c.radix[Levels+1]
	s.open = int(k % c.radix[Levels])
	k /= c.radix[Levels]
	var lvl int
	for lvl = Levels - 1; lvl >= 0; lvl-- {
		s.used[lvl] = int(k % c.radix[lvl])
		k /= c.radix[lvl]
	}

	return s
}

// finalState is the unique goal: every bucket exhausted, no group open.
func finalState(f *Frequency) state {
	var s state
	s.used = f.Counts

	return s
}

// layerHints returns, for every layer t in 0..N, a capacity hint bounded by
// the number of states that can exist after t placements:
//
//	#{used : Σused == t, used[l] ≤ Counts[l]} · (number of sums for open = t mod K)
//
// The open group always holds t mod K teams, so its sum lies in
// [open·MinLevel, open·MaxLevel]. Hints are capped at maxLayerHint.
//
// Complexity: O(Levels · N · max Counts).
func layerHints(f *Frequency) []int {
	// ways[t] = number of bounded compositions of t over the levels seen so far.
	ways := make([]int, f.N+1)
	ways[0] = 1
	var (
		lvl, t, u int
		next      []int
	)
	for lvl = 0; lvl < Levels; lvl++ {
		next = make([]int, f.N+1)
		for t = 0; t <= f.N; t++ {
			if ways[t] == 0 {
				continue
			}
			for u = 0; u <= f.Counts[lvl] && t+u <= f.N; u++ {
				next[t+u] = satAdd(next[t+u], ways[t])
			}
		}
		ways = next
	}

	hints := make([]int, f.N+1)
	var open, sums int
	for t = 0; t <= f.N; t++ {
		open = t % f.K
		sums = open*(MaxLevel-MinLevel) + 1
		hints[t] = satMul(ways[t], sums)
		if hints[t] > maxLayerHint {
			hints[t] = maxLayerHint
		}
	}

	return hints
}

// satAdd adds non-negative ints, saturating at maxLayerHint+1.
func satAdd(a, b int) int {
	if a > maxLayerHint || b > maxLayerHint-a {
		return maxLayerHint + 1
	}

	return a + b
}

// satMul multiplies non-negative ints, saturating at maxLayerHint+1.
func satMul(a, b int) int {
	if a != 0 && b > (maxLayerHint+1)/a {
		return maxLayerHint + 1
	}

	return a * b
}
