package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitgrid/config"
)

func setFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.String("config", config.DefaultConfigFile, "config file path")

	flags.Uint64Var(&cfg.Rows, "rows", cfg.Rows, "number of grid rows")
	flags.Uint64Var(&cfg.Cols, "cols", cfg.Cols, "number of grid columns")
	flags.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iterations per case")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the fill pattern")
	flags.Float64Var(&cfg.Density, "density", cfg.Density, "fraction of cells set by the fill pattern")
	flags.Float64Var(&cfg.MemoryHeadroom, "headroom", cfg.MemoryHeadroom, "fraction of available memory a run may use")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}

// loadConfig resolves the config from defaults, the config file and flags,
// in increasing priority. A missing file is an error only if it was set
// explicitly.
func loadConfig(cmd *cobra.Command, vip *viper.Viper) (*config.Config, error) {
	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	path := smutil.GetCanonicalPath(vip.GetString("config"))
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		if cmd.Flags().Changed("config") || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %v: %w", path, err)
		}
	}

	cfg := config.DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	return logger, nil
}
