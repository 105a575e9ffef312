package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RobDavenport/easel/internal/log"
)

var (
	verbose bool
	format  outputFormat
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "easel",
		Short:         "Sample easing curves and play back animation scenes",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Set(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	pflags := cmd.PersistentFlags()

	pflags.BoolVarP(&verbose, "verbose", "v", false, "Log animation lifecycle events to stderr.")
	format = formatTable
	pflags.Var(&format, "format", "Output format: table or csv.")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(sampleCmd())
	cmd.AddCommand(runCmd())

	return &cmd
}
