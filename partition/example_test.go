// Package partition_test provides runnable examples for the partition solver.
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/teamsplit/partition"
)

// ExampleSolve splits four teams into two pairs of equal strength.
//
//	strengths: 1 2 3 4   T = 10, m = 2 → fair share 5 per group
//	{1,4} and {2,3} both sum to 5 → cost 0
func ExampleSolve() {
	res, err := partition.Solve([]int{1, 2, 3, 4}, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Groups, res.Cost)
	// Output: [[1 4] [2 3]] 0
}

// ExampleSolve_imbalance shows a roster that cannot be balanced: the 5 must
// share a group, so the best split is {1,5} vs {1,1}.
func ExampleSolve_imbalance() {
	res, _ := partition.Solve([]int{1, 1, 1, 5}, 2, 2)
	fmt.Printf("groups=%v cost=%d average=%.1f\n", res.Groups, res.Cost, res.Average())
	// Output: groups=[[1 2] [3 4]] cost=8 average=4.0
}

// ExampleSolve_tieBreak pins which of several optimal groupings is returned.
func ExampleSolve_tieBreak() {
	first, _ := partition.Solve([]int{1, 2, 3, 4}, 2, 2, partition.WithTieBreak(partition.KeepFirst))
	last, _ := partition.Solve([]int{1, 2, 3, 4}, 2, 2, partition.WithTieBreak(partition.KeepLast))
	fmt.Println(first.Groups, first.Cost)
	fmt.Println(last.Groups, last.Cost)
	// Output:
	// [[1 4] [2 3]] 0
	// [[3 2] [4 1]] 0
}

// ExampleSolve_tournament balances a 32-team field into eight groups of four.
// T = 109 is not divisible by 8, so the best mix is three groups of 13 and
// five of 14: 3·|104−109| + 5·|112−109| = 30.
func ExampleSolve_tournament() {
	values := []int{
		3, 4, 3, 5, 2, 3, 4, 5,
		2, 2, 3, 2, 2, 4, 5, 4,
		5, 2, 3, 4, 5, 4, 4, 3,
		2, 3, 4, 5, 4, 2, 3, 3,
	}
	res, err := partition.Solve(values, 8, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	check, _ := partition.PartitionCost(values, res.Groups, 8)
	fmt.Printf("groups=%d cost=%d average=%.2f recomputed=%d\n", len(res.Groups), res.Cost, res.Average(), check)
	// Output: groups=8 cost=30 average=3.75 recomputed=30
}

// ExampleExhaustive cross-checks the DP on a small roster.
func ExampleExhaustive() {
	values := []int{5, 1, 4, 2, 2, 4}
	dp, _ := partition.Solve(values, 3, 2)
	bf, _ := partition.Exhaustive(values, 3, 2)
	fmt.Println(dp.Cost == bf.Cost, dp.Cost)
	// Output: true 0
}
