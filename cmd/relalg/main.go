// Command relalg exercises the relational-algebra engine: a movie
// database walkthrough of the algebra operators and a standalone
// linear-hash index exercise.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"relalg/pkg/logging"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "relalg",
		Short:         "in-memory relational algebra engine demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{
				Level:  logging.LogLevel(logLevel),
				Output: cmd.OutOrStdout(),
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR",
		"log verbosity (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(newDemoCommand())
	root.AddCommand(newLinHashCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
