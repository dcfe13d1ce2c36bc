package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitgrid/shared"
)

const (
	MinIterations = 1
	MaxIterations = 1 << 20
)

const (
	DefaultConfigFileName = "config.toml"

	// 50000 cells, 6250 groups.
	DefaultRows = 500
	DefaultCols = 100

	DefaultIterations     = 100
	DefaultSeed           = 1
	DefaultDensity        = 0.5
	DefaultMemoryHeadroom = 0.5
	DefaultLogLevel       = "info"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "bitgrid")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	Rows       uint64 `mapstructure:"rows"`
	Cols       uint64 `mapstructure:"cols"`
	Iterations int    `mapstructure:"iterations"`

	// Seed and Density drive the pattern the grids are filled with before
	// the read cases run.
	Seed    int64   `mapstructure:"seed"`
	Density float64 `mapstructure:"density"`

	// MemoryHeadroom is the fraction of available memory a run may use.
	MemoryHeadroom float64 `mapstructure:"headroom"`

	LogLevel string `mapstructure:"log-level"`
}

func (cfg *Config) Validate() error {
	if cfg.Rows == 0 {
		return fmt.Errorf("invalid `Rows`; expected: > 0, given: %d", cfg.Rows)
	}

	if cfg.Cols == 0 {
		return fmt.Errorf("invalid `Cols`; expected: > 0, given: %d", cfg.Cols)
	}

	if err := shared.ValidateDimensions(cfg.Rows, cfg.Cols); err != nil {
		return err
	}

	// The []bool baseline is indexed with int.
	if cfg.Rows*cfg.Cols > math.MaxInt {
		return fmt.Errorf("invalid dimensions; expected: rows x cols <= %d, given: %d x %d", math.MaxInt, cfg.Rows, cfg.Cols)
	}

	if cfg.Iterations < MinIterations || cfg.Iterations > MaxIterations {
		return fmt.Errorf("invalid `Iterations`; expected: %d-%d, given: %d", MinIterations, MaxIterations, cfg.Iterations)
	}

	if cfg.Density < 0 || cfg.Density > 1 || math.IsNaN(cfg.Density) {
		return fmt.Errorf("invalid `Density`; expected: 0-1, given: %v", cfg.Density)
	}

	if cfg.MemoryHeadroom <= 0 || cfg.MemoryHeadroom > 1 || math.IsNaN(cfg.MemoryHeadroom) {
		return fmt.Errorf("invalid `MemoryHeadroom`; expected: > 0 and <= 1, given: %v", cfg.MemoryHeadroom)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`; given: %q: %w", cfg.LogLevel, err)
	}

	return nil
}

// Level parses LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(cfg.LogLevel))
	return lvl, err
}

// Footprint returns the size in bytes of a packed grid and of a []bool with
// the configured shape. Assumes valid dimensions.
func (cfg *Config) Footprint() (packed, unpacked uint64) {
	return shared.PackedSize(cfg.Rows, cfg.Cols), shared.UnpackedSize(cfg.Rows, cfg.Cols)
}

// CheckMemory returns an error wrapping shared.ErrInsufficientMemory if a run
// needs more than the allowed share of available bytes.
func (cfg *Config) CheckMemory(available uint64) error {
	packed, unpacked := cfg.Footprint()
	required := packed + unpacked
	allowed := uint64(float64(available) * cfg.MemoryHeadroom)
	if required > allowed {
		return fmt.Errorf("%w: required: %d, allowed: %d (%v of %d available)",
			shared.ErrInsufficientMemory, required, allowed, cfg.MemoryHeadroom, available)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		Iterations:     DefaultIterations,
		Seed:           DefaultSeed,
		Density:        DefaultDensity,
		MemoryHeadroom: DefaultMemoryHeadroom,
		LogLevel:       DefaultLogLevel,
	}
}
