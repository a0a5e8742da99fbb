// Package cli implements the apsp command-line interface.
//
// The CLI is a thin driver over the offline package: it loads a YAML
// road-closure scenario, runs the reverse-replay solver, and prints one
// answer per line. It is built with cobra and supports --verbose (-v)
// debug logging via charmbracelet/log.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/offline"
)

// CLI holds shared state for all commands.
type CLI struct {
	logger *log.Logger
	out    io.Writer
}

// New creates a CLI whose logs go to errW and whose answers go to out.
// Keeping the two streams separate lets scripts pipe answers while logs
// stay on stderr.
func New(errW, out io.Writer) *CLI {
	return &CLI{
		logger: newLogger(errW, log.InfoLevel),
		out:    out,
	}
}

// Execute runs the root command under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	return c.RootCommand().ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "apsp",
		Short: "apsp answers shortest-path queries over road networks with closures",
		Long: `apsp maintains all-pairs shortest-path distances for a weighted network
and answers offline query lists mixing road closures and distance questions,
converting closures into incremental insertions by replaying the list in reverse.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())

	return root
}

// runCommand answers an offline scenario file: one line per distance query,
// -1 for unreachable pairs.
func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Answer the distance queries of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			scenario, err := offline.Load(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("scenario loaded",
				"vertices", scenario.Vertices,
				"edges", len(scenario.Edges),
				"queries", len(scenario.Queries))

			start := time.Now()
			answers, err := offline.Run(scenario)
			if err != nil {
				return err
			}
			c.logger.Debug("scenario solved",
				"answers", len(answers),
				"elapsed", time.Since(start))

			for _, a := range answers {
				fmt.Fprintln(c.out, a)
			}

			return nil
		},
	}
}
