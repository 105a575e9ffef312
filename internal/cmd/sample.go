package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/RobDavenport/easel"
)

func sampleCmd() *cobra.Command {
	var steps uint32

	cmd := cobra.Command{
		Use:   "sample <easing>",
		Short: "Print an easing curve at evenly spaced points.",
		Long: `Print an easing curve at evenly spaced points in [0, 1].

The easing is a curve name (ease-out-cubic), a CSS preset (ease-in-out)
or a cubic-bezier(x1, y1, x2, y2) expression.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := easel.ParseEasing(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid easing")
			}
			if steps == 0 {
				return errors.New("steps must be at least 1")
			}
			return writeRows(cmd.OutOrStdout(), format, []string{"T", e.String()}, sampleRows(e, steps))
		},
	}

	cmd.Flags().Uint32Var(&steps, "steps", 10, "Number of intervals between 0 and 1.")

	return &cmd
}

// sampleRows evaluates e at steps+1 points from 0 to 1 inclusive.
func sampleRows(e easel.Easing, steps uint32) [][]string {
	rows := make([][]string, 0, steps+1)
	for i := uint32(0); i <= steps; i++ {
		t := float64(i) / float64(steps)
		rows = append(rows, []string{
			strconv.FormatFloat(t, 'f', 3, 64),
			formatValue(easel.Evaluate(e, t)),
		})
	}
	return rows
}
