// Package partition - deterministic instance generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical rosters across platforms.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// math/rand.Rand is NOT goroutine-safe; every call builds its own stream.
package partition

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomStrengths returns n strengths drawn uniformly from MinLevel..MaxLevel.
//
// Complexity: O(n).
func RandomStrengths(n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadShape, n)
	}
	r := rngFromSeed(seed)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = MinLevel + r.Intn(Levels)
	}

	return out, nil
}

// RandomTeams builds a roster of m·k teams named "team-01", "team-02", …
// with strengths from RandomStrengths.
func RandomTeams(m, k int, seed int64) ([]Team, error) {
	if m <= 0 || k <= 0 || k > math.MaxInt/m {
		return nil, fmt.Errorf("%w: m=%d k=%d", ErrBadShape, m, k)
	}
	values, err := RandomStrengths(m*k, seed)
	if err != nil {
		return nil, err
	}

	width := len(fmt.Sprint(m * k))
	if width < 2 {
		width = 2
	}
	teams := make([]Team, len(values))
	var i int
	for i = range values {
		teams[i] = Team{
			Index:    i,
			Name:     fmt.Sprintf("team-%0*d", width, i+1),
			Strength: values[i],
		}
	}

	return teams, nil
}
