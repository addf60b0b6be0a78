// Package b2jpsieta holds what the analysis commands share: command-line
// flags, configuration loading, logging and profiling.
package b2jpsieta

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decibelcooper/b2jpsieta/config"
)

type Options struct {
	ConfigPath string
	Verbose    bool
	Profile    string

	Config *config.Config
	Logger *zap.Logger

	prof interface{ Stop() }
}

// Register adds the shared flags to cmd and hooks Setup into its persistent
// pre-run. Cobra skips post-run hooks when a command fails, so callers must
// call Close themselves once Execute returns.
func (o *Options) Register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "YAML configuration file (default: built-in)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&o.Profile, "profile", "", "write a CPU profile to this directory")

	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return o.Setup()
	}
}

func (o *Options) Setup() error {
	if o.Logger == nil {
		logger, err := NewLogger(o.Verbose)
		if err != nil {
			return err
		}
		o.Logger = logger
	}

	if o.ConfigPath == "" {
		o.Config = config.Default()
	} else {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	o.Logger.Debug("configuration loaded",
		zap.String("path", o.ConfigPath),
		zap.Int("n_gen", o.Config.NGen),
		zap.Float64("num_bb", o.Config.NumBB),
	)

	if o.Profile != "" {
		o.prof = profile.Start(profile.CPUProfile, profile.ProfilePath(o.Profile), profile.Quiet)
	}
	return nil
}

// Close stops profiling and flushes the logger. It is safe to call more
// than once, and before or without Setup.
func (o *Options) Close() {
	if o.prof != nil {
		o.prof.Stop()
		o.prof = nil
	}
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
}

func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
