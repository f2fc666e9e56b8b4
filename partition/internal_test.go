package partition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIndex(t *testing.T, values []int, m, k int) *Frequency {
	t.Helper()
	f, err := Index(values, m, k)
	require.NoError(t, err)

	return f
}

func TestCodec_BoundAndRoundTrip(t *testing.T) {
	f := mustIndex(t, []int{1, 2, 3, 4}, 2, 2)
	c, err := newCodec(f)
	require.NoError(t, err)
	// (1+1)^4 · (0+1) · k=2 · (5·1+1)=6
	assert.Equal(t, uint64(16*2*6), c.bound)

	s := state{used: [Levels]int{1, 0, 1, 0, 0}, open: 1, sum: 3}
	k := c.key(s)
	assert.Less(t, k, c.bound)
	assert.Equal(t, s, c.decode(k))
	assert.Equal(t, uint64(0), c.key(state{}))
	assert.Equal(t, c.bound-1, c.key(state{used: [Levels]int{1, 1, 1, 1, 0}, open: 1, sum: 5}))
}

func TestCodec_Overflow(t *testing.T) {
	f := &Frequency{N: 1 << 20, M: 1, K: 1 << 20}
	for lvl := range f.Counts {
		f.Counts[lvl] = 1 << 20
	}
	_, err := newCodec(f)
	assert.ErrorIs(t, err, ErrStateSpaceOverflow)
}

func TestLayerHints(t *testing.T) {
	f := mustIndex(t, []int{1, 2, 3, 4}, 2, 2)
	hints := layerHints(f)
	require.Len(t, hints, 5)
	// compositions of t over four 0/1 buckets: 1,4,6,4,1; open layers have 4·1+1 sums.
	assert.Equal(t, []int{1, 4 * 5, 6, 4 * 5, 1}, hints)

	big := mustIndex(t, make4(400), 100, 4)
	for _, h := range layerHints(big) {
		assert.LessOrEqual(t, h, maxLayerHint)
	}
}

func make4(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1 + i%Levels
	}

	return out
}

func TestFold(t *testing.T) {
	moves := []Decision{{0, false}, {3, true}, {1, false}, {2, true}}
	assert.Equal(t, [][]int{{1, 4}, {2, 3}}, fold(moves, 2, 2))
}

func TestFold_PanicsOnInconsistentPath(t *testing.T) {
	cases := map[string][]Decision{
		"short group":   {{0, true}, {1, false}, {2, false}, {3, true}},
		"trailing open": {{0, false}, {1, true}, {2, false}, {3, false}},
		"too few":       {{0, false}, {1, true}},
	}
	for name, moves := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrInconsistentPath), "got %v", err)
			}()
			fold(moves, 2, 2)
		})
	}
}

// TestSolveIndexed_Infeasible feeds an index whose buckets cannot fill the
// last group: the final layer stays empty and the result is not an error.
func TestSolveIndexed_Infeasible(t *testing.T) {
	f := &Frequency{N: 2, M: 1, K: 2, Total: 1}
	f.Counts[0] = 1
	f.Buckets[0] = []int{0}

	res, err := solveIndexed(f, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, NoCost, res.Cost)
	assert.Nil(t, res.Groups)
	assert.Equal(t, 2, res.States, "root plus the single layer-1 state")
}

func TestBacktrack_FollowsParents(t *testing.T) {
	f := mustIndex(t, []int{1, 1, 1, 5}, 2, 2)
	c, err := newCodec(f)
	require.NoError(t, err)
	tb := newTable(f, c)
	sw := &sweeper{tb: tb, opts: DefaultOptions(), log: DefaultOptions().Logger}
	require.NoError(t, sw.process())

	pos, ok := tb.find(f.N, finalState(f))
	require.True(t, ok)
	assert.Equal(t, int64(8), tb.layers[f.N].nodes[pos].cost)
	assert.Equal(t, []Decision{{0, false}, {1, true}, {2, false}, {3, true}}, tb.backtrack(pos))

	// intermediate indexes are released once their layer is complete
	for layerIdx := 1; layerIdx < f.N; layerIdx++ {
		assert.Nil(t, tb.layers[layerIdx].index, "layer %d", layerIdx)
	}
}
