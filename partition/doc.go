// Package partition splits a roster of teams into equally sized groups so that
// the groups are as balanced in total strength as possible.
//
// 🚀 What does it solve?
//
//	Given n teams with strengths in 1..5, a group count m and a group size k
//	(n == m·k), find an ordered assignment of every team to exactly one group
//	minimizing
//
//	  cost = Σ_groups | sum(group)·m − T |,   T = Σ strengths
//
//	m·sum(group) == T is exactly the "fair share" of total strength, so the cost
//	is zero iff every group carries the same strength.
//
// ✨ How it works:
//   - Frequency index: teams are bucketed by strength. Same-strength teams are
//     interchangeable for the cost, so the search only decides *which strength*
//     goes next and always takes the next unused team of that bucket.
//   - Layered DP: layer t holds every reachable state after t placements.
//     A state is (teams used per strength, size of the open group, its sum).
//     Closing a group adds |(s+v)·m − T| to the running cost.
//   - Reconstruction: each state keeps a back-pointer into the previous layer;
//     walking them from the final state yields the assignment order, which is
//     folded into groups.
//
// ⚙️ Usage:
//
//	res, err := partition.Solve([]int{1, 2, 3, 4}, 2, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Groups, res.Cost) // [[1 4] [2 3]] 0
//
// Options:
//   - WithTieBreak(KeepFirst|KeepLast) — which predecessor survives on equal cost.
//   - WithMaxStates(n)                 — abort with ErrStateBudget past n states.
//   - WithLogger(l)                    — logrus.FieldLogger for progress entries.
//
// Complexity:
//
//	States ≤ Π(f[v]+1) · k · (5·(k−1)+1), each expanded in O(5).
//	Exponential in the number of strength levels only, which is fixed.
//
// Errors (sentinel): ErrBadShape, ErrSizeMismatch, ErrLevelOutOfRange,
// ErrStateBudget, ErrStateSpaceOverflow, ErrTooLarge, ErrInvalidPartition.
// An instance without a complete assignment is reported through
// Result.Feasible == false, never as an error.
package partition
