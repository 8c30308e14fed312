package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/cadence/internal/app"
	"github.com/llehouerou/cadence/internal/config"
	"github.com/llehouerou/cadence/internal/errmsg"
	"github.com/llehouerou/cadence/internal/logging"
	"github.com/llehouerou/cadence/internal/medialib"
	"github.com/llehouerou/cadence/internal/player"
	"github.com/llehouerou/cadence/internal/stderr"
)

type options struct {
	configPath string
	demo       bool
	logLevel   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   config.AppName + " [folders...]",
		Short: "A terminal music player for your local library.",
		Long: "cadence scans the given music folders (or the ones in its config file)\n" +
			"and plays them from a terminal UI. Without folders it plays a demo catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/cadence/config.toml)")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "play the built-in demo catalog")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, opts options, folders []string) error {
	cfg, err := config.LoadWith(opts.configPath, config.Overrides{
		Folders:  folders,
		Demo:     opts.demo,
		LogLevel: opts.logLevel,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	log, closeLog, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.LogFile(),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, cfg.LogFile(), err))
	}
	defer closeLog()

	// Audio backends print to fd 2, which would corrupt the TUI.
	if err := stderr.Start(log); err != nil {
		log.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := player.New(player.NewFetcher(config.CacheDir()), log.Named("player"))
	defer engine.Close()

	deps := app.Deps{
		Context: ctx,
		Config:  cfg,
		Engine:  engine,
		Log:     log,
	}
	if !cfg.UseDemo() {
		lib := medialib.New(cfg.Library.Folders, medialib.WithLogger(log.Named("medialib")))
		deps.Source = lib
		deps.Watcher = lib
	}
	log.Info("starting",
		zap.Bool("demo", cfg.UseDemo()),
		zap.Strings("folders", cfg.Library.Folders))

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	log.Info("exiting")
	return nil
}
