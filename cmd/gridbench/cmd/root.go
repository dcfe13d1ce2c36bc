package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitgrid/benchmark"
	"github.com/spacemeshos/bitgrid/config"
	"github.com/spacemeshos/bitgrid/shared"
)

var (
	Version string
	Commit  string
)

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	vip := viper.New()

	rootCmd := &cobra.Command{
		Use:   "gridbench",
		Short: "Benchmark packed bit grids against plain bool slices",
		Long: `gridbench fills a packed bit grid and a []bool of the same shape from a
seeded random pattern, then times reading and writing every cell and a
single cell on both.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, vip)
		},
	}

	setFlags(rootCmd.PersistentFlags(), config.DefaultConfig())
	rootCmd.Flags().Bool("print-config", false, "print the resolved config and exit")

	rootCmd.AddCommand(newFootprintCmd(vip))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runBench(cmd *cobra.Command, vip *viper.Viper) error {
	cfg, err := loadConfig(cmd, vip)
	if err != nil {
		return err
	}

	if vip.GetBool("print-config") {
		spew.Fdump(cmd.OutOrStdout(), cfg)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	available, err := shared.AvailableMemory()
	if err != nil {
		logger.Warn("skipping memory check", zap.Error(err))
	} else if err := cfg.CheckMemory(available); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting benchmark",
		zap.Uint64("rows", cfg.Rows),
		zap.Uint64("cols", cfg.Cols),
		zap.Int("iterations", cfg.Iterations),
	)

	results, err := benchmark.Run(ctx, *cfg, benchmark.WithLogger(logger))
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("benchmark interrupted", zap.Int("completed", len(results)))
	case err != nil:
		return fmt.Errorf("benchmark failed: %w", err)
	}

	report(cmd.OutOrStdout(), cfg, results)
	return nil
}

func newFootprintCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "footprint",
		Short: "Print the memory footprint of the configured grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, vip)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			reportFootprint(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the binary",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridbench %s %s\n", Version, Commit)
		},
	}
}
