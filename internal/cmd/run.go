package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RobDavenport/easel"
	"github.com/RobDavenport/easel/internal/log"
	"github.com/RobDavenport/easel/scene"
)

func runCmd() *cobra.Command {
	var every uint32

	cmd := cobra.Command{
		Use:   "run <scene.yaml>",
		Short: "Play a scene file and print sampled values per frame.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every == 0 {
				return errors.New("every must be at least 1")
			}

			sc, err := scene.Load(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", args[0])
			}

			logger := log.Get()
			var obs easel.Observer
			if verbose {
				obs = easel.NewLogObserver(logger)
			}

			runner := scene.NewRunner(sc, obs)
			frames := runner.Run()
			logger.Debug("scene finished",
				zap.String("path", args[0]),
				zap.Int("frames", len(frames)),
				zap.Bool("settled", runner.Settled()),
			)

			header, rows := frameRows(frames, every)
			return writeRows(cmd.OutOrStdout(), format, header, rows)
		},
	}

	cmd.Flags().Uint32Var(&every, "every", 1, "Print every Nth frame. The last frame is always printed.")

	return &cmd
}

// frameRows lays frames out with one column per animation.
func frameRows(frames []scene.Frame, every uint32) ([]string, [][]string) {
	header := []string{"Frame"}
	if len(frames) == 0 {
		return header, nil
	}
	for _, s := range frames[0].Samples {
		header = append(header, s.Name)
	}

	var rows [][]string
	for i, f := range frames {
		if f.Index%every != 0 && i != len(frames)-1 {
			continue
		}
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatUint(uint64(f.Index), 10))
		for _, s := range f.Samples {
			row = append(row, formatValue(s.Value))
		}
		rows = append(rows, row)
	}
	return header, rows
}
