package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studytimer/internal/bootstrap"
	"studytimer/internal/platform/config"
	"studytimer/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "studytimer",
		Short:         "Study/break interval timer with study totals, grades and presets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default: user config dir/studytimer)")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: <data-dir>/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newGradeCmd(opts))
	root.AddCommand(newPresetCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.New(opts.dataDir, opts.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// loadApp wires the app for headless commands, logging to stderr.
func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.Log.Level)
	return bootstrap.New(cfg, logger, os.Stderr)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, logFile, err := bootstrap.OpenTUILog(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	app, err := bootstrap.New(cfg, logger, os.Stderr)
	if err != nil {
		return err
	}
	defer app.Close()
	return bootstrap.RunTUI(app)
}
