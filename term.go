package main

import (
	"fmt"
	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/spark/driver"
	"github.com/oliverbestmann/spark/term"
	"github.com/spf13/cobra"
	"os/signal"
	"syscall"
)

func termCommand(opts *options) *cobra.Command {
	var fps float64
	var width float64

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Sweep the spark line across the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			// one cell is one unit, the config default is far too wide
			if opts.configPath == "" || cmd.Flags().Changed("spark-width") {
				cfg.Width = width
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}

			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}

			defer screen.Fini()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return term.Run(ctx, screen, cfg, driver.Interval(fps))
		},
	}

	cmd.Flags().Float64Var(&fps, "fps", 30, "frames per second")
	cmd.Flags().Float64Var(&width, "spark-width", term.DefaultWidth,
		"spark line width in cells, replaces sparkWidth of --config only when given")

	return cmd
}
