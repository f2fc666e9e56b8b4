// Package cli provides the teamsplit command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// envLogLevel is consulted when --log-level is not given explicitly.
const envLogLevel = "TEAMSPLIT_LOG_LEVEL"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	logLevel  string
	logFormat string

	// log is set by the root PersistentPreRunE.
	log *logrus.Entry
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "teamsplit",
		Short: "Split a roster of teams into balanced, equally sized groups.",
		Long: `teamsplit assigns n teams with strengths 1..5 to m groups of k teams ` +
			`(n = m*k), minimizing the sum over groups of |group strength * m - total strength|.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := g.logLevel
			if !cmd.Flags().Changed("log-level") {
				if env, ok := os.LookupEnv(envLogLevel); ok && env != "" {
					level = env
				}
			}
			var err error
			g.log, err = newLogger(cmd.ErrOrStderr(), level, g.logFormat)

			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error); falls back to $"+envLogLevel)
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text or json)")

	rootCmd.AddCommand(newSolveCmd(g))
	rootCmd.AddCommand(newGenCmd(g))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds a logrus logger writing to out, tagged with a run id.
func newLogger(out io.Writer, level, format string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("cli: unknown log format %q", format)
	}

	return l.WithField("run", xid.New().String()), nil
}
