package partition

import "fmt"

// Imbalance returns |groupSum·m − total|: how far a group is from the
// per-group fair share total/m, scaled by m to stay in integers.
func Imbalance(groupSum, m, total int) int64 {
	d := int64(groupSum)*int64(m) - int64(total)
	if d < 0 {
		return -d
	}

	return d
}

// ValidatePartition checks that groups are m pairwise-disjoint groups of
// exactly k IDs whose union is {1..n}.
//
// Complexity: O(n).
func ValidatePartition(groups [][]int, n, m, k int) error {
	if m <= 0 || k <= 0 || n%k != 0 || n/k != m {
		return fmt.Errorf("%w: %d groups of %d cannot cover %d teams", ErrInvalidPartition, m, k, n)
	}
	if len(groups) != m {
		return fmt.Errorf("%w: got %d groups, want %d", ErrInvalidPartition, len(groups), m)
	}
	seen := make([]bool, n+1)

	var (
		g, id int
		group []int
	)
	for g, group = range groups {
		if len(group) != k {
			return fmt.Errorf("%w: group %d has %d teams, want %d", ErrInvalidPartition, g+1, len(group), k)
		}
		for _, id = range group {
			if id < 1 || id > n {
				return fmt.Errorf("%w: team %d out of range 1..%d", ErrInvalidPartition, id, n)
			}
			if seen[id] {
				return fmt.Errorf("%w: team %d assigned twice", ErrInvalidPartition, id)
			}
			seen[id] = true
		}
	}

	return nil
}

// PartitionCost recomputes Σ |sum(group)·m − T| for groups of 1-based IDs
// over values, after validating both the input and the partition.
func PartitionCost(values []int, groups [][]int, m int) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: m=%d", ErrBadShape, m)
	}
	f, err := Index(values, m, len(values)/m)
	if err != nil {
		return 0, err
	}
	if err = ValidatePartition(groups, f.N, f.M, f.K); err != nil {
		return 0, err
	}

	var (
		cost    int64
		sum, id int
		group   []int
	)
	for _, group = range groups {
		sum = 0
		for _, id = range group {
			sum += values[id-1]
		}
		cost += Imbalance(sum, f.M, f.Total)
	}

	return cost, nil
}
