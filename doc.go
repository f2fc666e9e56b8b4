// Package teamsplit splits a roster of teams into balanced, equally sized
// groups.
//
// 🚀 What is teamsplit?
//
//	n teams, each with a strength 1..5, are assigned to m groups of exactly
//	k teams (n = m·k). The assignment minimizes the total imbalance
//
//		Σ_g | S_g·m − T |
//
//	where S_g is the strength of group g and T the strength of the roster.
//	The optimum is exact: a layered dynamic program over per-level counts,
//	never a heuristic.
//
// Under the hood:
//
//	partition/     — Solve, SolveTeams, Exhaustive oracle, PartitionCost, RandomTeams
//	internal/cli/  — cobra commands `solve` and `gen`, YAML rosters, logrus setup
//	cmd/teamsplit/ — the binary
//
// Quick example:
//
//	res, _ := partition.Solve([]int{1, 2, 3, 4}, 2, 2)
//	fmt.Println(res.Groups, res.Cost) // [[1 4] [2 3]] 0
//
//	go install github.com/katalvlaran/teamsplit/cmd/teamsplit@latest
package teamsplit
