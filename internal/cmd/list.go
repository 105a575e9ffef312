package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RobDavenport/easel"
)

var cssPresetNames = []string{"ease", "ease-in", "ease-out", "ease-in-out", "snap"}

func listCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List easing curves and spring presets.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, e := range easel.NamedEasings() {
				rows = append(rows, []string{"easing", e.String(), formatValue(easel.Evaluate(e, 0.5))})
			}
			for _, name := range cssPresetNames {
				e, err := easel.ParseEasing(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{"css", name, formatValue(easel.Evaluate(e, 0.5))})
			}
			for _, name := range easel.SpringPresetNames() {
				rows = append(rows, []string{"spring", name, ""})
			}
			return writeRows(cmd.OutOrStdout(), format, []string{"Kind", "Name", "At 0.5"}, rows)
		},
	}
	return &cmd
}
