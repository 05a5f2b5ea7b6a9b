// Package main provides tweensim, a headless driver for the tween engine.
// It simulates tweens on a ManualScheduler, lists the easing catalog and
// replays control scripts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tween"
)

var (
	// configFile is set by the --config flag.
	configFile string
	// logLevel overrides the configured log level when set.
	logLevel string
	// profileMode is set by the --profile flag.
	profileMode string

	cfg     tween.Config
	log     zerolog.Logger
	stopper interface{ Stop() }
	closers []func() error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tweensim",
	Short: "tweensim drives the tween engine without a window",
	Long: `tweensim runs tweens on a manual scheduler. Use it to measure tick cost,
inspect easing curves and replay control scripts deterministically.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "", "write a profile: cpu, mem or trace")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(easesCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads config, builds the logger and starts profiling.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = tween.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var closer io.Closer
	log, closer, err = tween.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	closers = append(closers, closer.Close)

	switch profileMode {
	case "":
	case "cpu":
		stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		stopper = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	case "trace":
		stopper = profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if stopper != nil {
		stopper.Stop()
	}
	for _, c := range closers {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}
