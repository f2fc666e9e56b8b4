package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/teamsplit/partition"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrCostMismatch is returned by `solve --verify` when the recomputed cost
// disagrees with the solver.
var ErrCostMismatch = errors.New("cli: recomputed cost differs from solver cost")

// ErrNoInput is returned when neither --roster nor --values is given.
var ErrNoInput = errors.New("cli: one of --roster or --values is required")

type solveOptions struct {
	groups    int
	size      int
	roster    string
	values    string
	tieBreak  string
	maxStates int
	verify    bool

	stdin io.Reader
}

func newSolveCmd(g *globalOptions) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the minimum-imbalance grouping of a roster.",
		Long: "`solve --groups M --size K --roster FILE` or " +
			"`solve --groups M --size K --values 3,4,5,...` prints each group, " +
			"the total cost and the average cost per group.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o.stdin = cmd.InOrStdin()

			return runSolve(cmd.OutOrStdout(), g.log, o)
		},
	}
	cmd.Flags().IntVarP(&o.groups, "groups", "m", 0, "number of groups (defaults to the roster's groups)")
	cmd.Flags().IntVarP(&o.size, "size", "k", 0, "teams per group (defaults to the roster's size, or n/groups)")
	cmd.Flags().StringVarP(&o.roster, "roster", "r", "", "YAML roster file ('-' for stdin)")
	cmd.Flags().StringVar(&o.values, "values", "", "comma-separated strengths, e.g. 1,2,3,4 (blank entries are rejected)")
	cmd.Flags().StringVar(&o.tieBreak, "tie-break", "first", "equal-cost policy: first or last")
	cmd.Flags().IntVar(&o.maxStates, "max-states", 0, "abort past this many DP states (0 = unlimited)")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "recompute the cost from the returned groups")

	return cmd
}

// runSolve loads the input, solves it and prints the grouping to out.
func runSolve(out io.Writer, log *logrus.Entry, o *solveOptions) error {
	teams, m, k, err := o.load()
	if err != nil {
		return err
	}
	tb, err := partition.ParseTieBreak(o.tieBreak)
	if err != nil {
		return err
	}
	if o.maxStates < 0 {
		return fmt.Errorf("cli: --max-states must be non-negative, got %d", o.maxStates)
	}

	log = log.WithFields(logrus.Fields{"teams": len(teams), "groups": m, "size": k})
	log.Info("solving")

	res, err := partition.SolveTeams(teams, m, k,
		partition.WithTieBreak(tb),
		partition.WithMaxStates(o.maxStates),
		partition.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Error("solve failed")
		return err
	}
	if !res.Feasible {
		log.Warn("no valid assignment")
		fmt.Fprintln(out, "No valid assignment exists.")

		return nil
	}

	if o.verify {
		values := make([]int, len(teams))
		for i, t := range teams {
			values[i] = t.Strength
		}
		cost, verr := partition.PartitionCost(values, res.Groups, m)
		if verr != nil {
			return verr
		}
		if cost != res.Cost {
			return fmt.Errorf("%w: solver %d, recomputed %d", ErrCostMismatch, res.Cost, cost)
		}
		log.WithField("cost", cost).Info("cost verified")
	}

	printResult(out, res, teams)
	log.WithFields(logrus.Fields{"cost": res.Cost, "states": res.States}).Info("solved")

	return nil
}

// load resolves the roster source and the (m, k) shape.
func (o *solveOptions) load() ([]partition.Team, int, int, error) {
	var (
		teams []partition.Team
		m, k  = o.groups, o.size
		err   error
	)
	switch {
	case o.roster != "" && o.values != "":
		return nil, 0, 0, errors.New("cli: --roster and --values are mutually exclusive")
	case o.roster != "":
		var ro *Roster
		ro, err = o.readRoster()
		if err != nil {
			return nil, 0, 0, err
		}
		teams = ro.PartitionTeams()
		if m == 0 {
			m = ro.Groups
		}
		if k == 0 {
			k = ro.Size
		}
	case o.values != "":
		teams, err = ParseValues(o.values)
		if err != nil {
			return nil, 0, 0, err
		}
	default:
		return nil, 0, 0, ErrNoInput
	}

	if k == 0 && m > 0 {
		k = len(teams) / m
	}
	if m == 0 && k > 0 {
		m = len(teams) / k
	}

	return teams, m, k, nil
}

func (o *solveOptions) readRoster() (*Roster, error) {
	if o.roster == "-" {
		in := o.stdin
		if in == nil {
			in = os.Stdin
		}

		return LoadRoster(in)
	}
	f, err := os.Open(o.roster)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadRoster(f)
}

// printResult writes one line per group plus the cost summary.
func printResult(out io.Writer, res partition.Result, teams []partition.Team) {
	var (
		sb  strings.Builder
		sum int
	)
	for i, group := range res.Members(teams) {
		sb.Reset()
		sum = 0
		for j, t := range group {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s(%d)", t, t.Strength)
			sum += t.Strength
		}
		fmt.Fprintf(out, "Group %d: %s  [strength %d]\n", i+1, sb.String(), sum)
	}
	fmt.Fprintf(out, "Total cost: %d\n", res.Cost)
	fmt.Fprintf(out, "Average cost: %.3f\n", res.Average())
}
