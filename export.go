package main

import (
	"github.com/oliverbestmann/spark/driver"
	"github.com/oliverbestmann/spark/render"
	"github.com/oliverbestmann/spark/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCommand(opts *options) *cobra.Command {
	var frames int
	var fps float64
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the sweep as numbered PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			paths, err := render.ExportFrames(cfg, opts.width, opts.height, frames, driver.Interval(fps), out)
			if err != nil {
				return err
			}

			view.Logger().Info("Exported frames", zap.Int("count", len(paths)), zap.String("dir", out))
			cmd.Printf("wrote %d frames to %s\n", len(paths), out)

			return nil
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 60, "number of frames to write")
	cmd.Flags().Float64Var(&fps, "fps", 30, "frames per second of the animation")
	cmd.Flags().StringVarP(&out, "out", "o", "frames", "output directory")

	return cmd
}
