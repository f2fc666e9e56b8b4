package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/teamsplit/partition"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type genOptions struct {
	groups int
	size   int
	seed   int64
	out    string
}

func newGenCmd(g *globalOptions) *cobra.Command {
	o := &genOptions{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random roster of groups*size teams.",
		Long: "`gen --groups M --size K --seed S` writes a YAML roster with " +
			"uniformly random strengths; the same seed always yields the same roster.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			teams, err := partition.RandomTeams(o.groups, o.size, o.seed)
			if err != nil {
				return err
			}
			ro := RosterFromTeams(teams, o.groups, o.size)

			if err = writeRosterTo(cmd.OutOrStdout(), o.out, ro); err != nil {
				return err
			}
			g.log.WithFields(logrus.Fields{
				"teams": len(teams),
				"seed":  o.seed,
				"out":   o.out,
			}).Info("roster generated")

			return nil
		},
	}
	cmd.Flags().IntVarP(&o.groups, "groups", "m", 8, "number of groups")
	cmd.Flags().IntVarP(&o.size, "size", "k", 4, "teams per group")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "RNG seed (0 uses the default seed)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

// writeRosterTo writes ro to path, or to stdout when path is empty or "-".
// A failing Close is reported like a failing write.
func writeRosterTo(stdout io.Writer, path string, ro *Roster) error {
	if path == "" || path == "-" {
		return WriteRoster(stdout, ro)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteRoster(f, ro); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cli: close %s: %w", path, err)
	}

	return nil
}
