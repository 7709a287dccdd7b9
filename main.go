package main

import (
	"context"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/spark/config"
	"github.com/oliverbestmann/spark/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

type options struct {
	configPath string
	verbose    bool
	profile    bool
	watch      bool

	width  int
	height int

	stopProfile func()
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "spark",
		Short:        "Sweep an animated spark line across a window",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(opts.verbose); err != nil {
				return err
			}

			if opts.profile {
				opts.stopProfile = ProfileStart()
			}

			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.stopProfile != nil {
				opts.stopProfile()
			}

			_ = view.Logger().Sync()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with spark options")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log animation lifecycle events")
	flags.BoolVar(&opts.profile, "profile", false, "write a CPU profile")
	flags.IntVar(&opts.width, "width", 800, "surface width")
	flags.IntVar(&opts.height, "height", 480, "surface height")

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the config file when it changes")

	cmd.AddCommand(exportCommand(opts), termCommand(opts))

	return cmd
}

func (o *options) load() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(o.configPath)
}

func setupLogging(verbose bool) error {
	var logger *zap.Logger
	var err error

	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		logger, err = cfg.Build()
	}

	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	view.SetLogger(logger)
	return nil
}

func runWindow(opts *options) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	game, err := NewGame(cfg)
	if err != nil {
		return err
	}

	if opts.watch && opts.configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go watchConfig(ctx, opts.configPath, game.view)
	}

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("Spark")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	return nil
}

// watchConfig feeds every change of the config file into the view. The view
// picks it up on its next update.
func watchConfig(ctx context.Context, path string, v *view.View) {
	logger := view.Logger().With(zap.String("path", path))

	apply := func(cfg config.Config) {
		if err := v.Configure(cfg); err != nil {
			logger.Warn("config rejected", zap.Error(err))
			return
		}

		logger.Info("config reloaded")
	}

	onError := func(err error) {
		logger.Warn("config reload failed", zap.Error(err))
	}

	if err := config.Watch(ctx, path, apply, onError); err != nil {
		logger.Error("config watch stopped", zap.Error(err))
	}
}
