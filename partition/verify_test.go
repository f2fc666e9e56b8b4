package partition_test

import (
	"testing"

	"github.com/katalvlaran/teamsplit/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImbalance(t *testing.T) {
	assert.Equal(t, int64(0), partition.Imbalance(5, 2, 10))
	assert.Equal(t, int64(4), partition.Imbalance(6, 2, 8))
	assert.Equal(t, int64(4), partition.Imbalance(2, 2, 8))
	assert.Equal(t, int64(5), partition.Imbalance(13, 8, 109))
	assert.Equal(t, int64(3), partition.Imbalance(14, 8, 109))
}

func TestValidatePartition(t *testing.T) {
	cases := []struct {
		name    string
		groups  [][]int
		n, m, k int
		ok      bool
	}{
		{"valid", [][]int{{1, 4}, {2, 3}}, 4, 2, 2, true},
		{"valid any order", [][]int{{3, 2}, {4, 1}}, 4, 2, 2, true},
		{"missing group", [][]int{{1, 4}}, 4, 2, 2, false},
		{"short group", [][]int{{1, 4, 2}, {3}}, 4, 2, 2, false},
		{"duplicate", [][]int{{1, 1}, {2, 3}}, 4, 2, 2, false},
		{"zero id", [][]int{{0, 4}, {2, 3}}, 4, 2, 2, false},
		{"id past n", [][]int{{5, 4}, {2, 3}}, 4, 2, 2, false},
		{"shape mismatch", [][]int{{1, 2}, {3, 4}}, 5, 2, 2, false},
		{"shape wraps to n", [][]int{{1, 2}, {3, 4}}, 4, (1 << 62) + 1, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := partition.ValidatePartition(tc.groups, tc.n, tc.m, tc.k)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, partition.ErrInvalidPartition)
		})
	}
}

func TestPartitionCost(t *testing.T) {
	values := []int{1, 1, 1, 5}

	cost, err := partition.PartitionCost(values, [][]int{{1, 4}, {2, 3}}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cost)

	cost, err = partition.PartitionCost([]int{1, 2, 3, 4}, [][]int{{1, 2}, {3, 4}}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cost, "|3·2−10| + |7·2−10|")

	_, err = partition.PartitionCost(values, [][]int{{1, 4}, {4, 3}}, 2)
	assert.ErrorIs(t, err, partition.ErrInvalidPartition)

	_, err = partition.PartitionCost(values, [][]int{{1, 2, 3, 4}}, 0)
	assert.ErrorIs(t, err, partition.ErrBadShape)

	_, err = partition.PartitionCost([]int{1, 2, 3}, [][]int{{1}, {2, 3}}, 2)
	assert.ErrorIs(t, err, partition.ErrSizeMismatch)
}
