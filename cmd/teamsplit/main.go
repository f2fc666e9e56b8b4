// Command teamsplit splits a roster of teams into balanced groups.
//
//	teamsplit gen --groups 8 --size 4 --seed 7 --out roster.yaml
//	teamsplit solve --roster roster.yaml --verify
//	teamsplit solve --groups 2 --values 1,2,3,4
package main

import "github.com/katalvlaran/teamsplit/internal/cli"

func main() {
	cli.Execute()
}
