// Package benchmark measures point access on a packed grid against a plain
// []bool of the same shape.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitgrid"
	"github.com/spacemeshos/bitgrid/config"
)

type Case int

const (
	GetAll Case = iota
	GetSingle
	SetAll
	SetSingle
)

var Cases = []Case{GetAll, GetSingle, SetAll, SetSingle}

func (c Case) String() string {
	switch c {
	case GetAll:
		return "get-all"
	case GetSingle:
		return "get-single"
	case SetAll:
		return "set-all"
	case SetSingle:
		return "set-single"
	default:
		return fmt.Sprintf("case(%d)", int(c))
	}
}

type Subject int

const (
	Packed Subject = iota
	Bool
)

var Subjects = []Subject{Packed, Bool}

func (s Subject) String() string {
	switch s {
	case Packed:
		return "packed"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("subject(%d)", int(s))
	}
}

type Result struct {
	Case       Case
	Subject    Subject
	Iterations int
	// Ops is the number of cell accesses performed across all iterations.
	Ops     uint64
	Elapsed time.Duration
}

// PerOp returns the mean duration of a single cell access.
func (r Result) PerOp() time.Duration {
	if r.Ops == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Ops)
}

var sink bool

// Run fills a grid and a []bool from the configured pattern, then times every
// case against both. It stops between iterations once ctx is done.
func Run(ctx context.Context, cfg config.Config, opts ...Option) ([]Result, error) {
	options := options{
		logger: zap.NewNop(),
		cases:  Cases,
	}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := bitgrid.New(cfg.Rows, cfg.Cols)
	if err := Fill(g, NewPattern(cfg.Seed, cfg.Density)); err != nil {
		return nil, fmt.Errorf("failed to fill grid: %w", err)
	}
	cells := unpack(g)

	logger.Info("grid ready",
		zap.Uint64("rows", cfg.Rows),
		zap.Uint64("cols", cfg.Cols),
		zap.Int("groups", g.NumGroups()),
		zap.Int64("seed", cfg.Seed),
		zap.Float64("density", cfg.Density),
	)

	results := make([]Result, 0, len(options.cases)*len(Subjects))
	for _, c := range options.cases {
		for _, s := range Subjects {
			fn, ops := workload(c, s, g, cells)
			res := Result{Case: c, Subject: s}
			for n := 0; n < cfg.Iterations; n++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				start := time.Now()
				fn()
				res.Elapsed += time.Since(start)
				res.Iterations++
				res.Ops += ops
			}

			logger.Debug("case completed",
				zap.Stringer("case", c),
				zap.Stringer("subject", s),
				zap.Duration("elapsed", res.Elapsed),
				zap.Duration("per_op", res.PerOp()),
			)
			results = append(results, res)
		}
	}

	return results, nil
}

// workload returns one iteration of case c on subject s and the number of
// cell accesses it performs. Single-cell cases target the centre cell.
func workload(c Case, s Subject, g *bitgrid.Grid, cells []bool) (func(), uint64) {
	rows, cols := g.Rows(), g.Cols()
	ci, cj := rows/2, cols/2

	switch s {
	case Packed:
		switch c {
		case GetAll:
			return func() {
				for i := uint64(0); i < rows; i++ {
					for j := uint64(0); j < cols; j++ {
						sink = g.Get(i, j)
					}
				}
			}, rows * cols
		case GetSingle:
			return func() { sink = g.Get(ci, cj) }, 1
		case SetAll:
			return func() {
				for i := uint64(0); i < rows; i++ {
					for j := uint64(0); j < cols; j++ {
						g.Set(i, j, true)
					}
				}
			}, rows * cols
		case SetSingle:
			return func() { g.Set(ci, cj, true) }, 1
		}
	case Bool:
		switch c {
		case GetAll:
			return func() {
				for i := uint64(0); i < rows; i++ {
					for j := uint64(0); j < cols; j++ {
						sink = cells[i*cols+j]
					}
				}
			}, rows * cols
		case GetSingle:
			return func() { sink = cells[ci*cols+cj] }, 1
		case SetAll:
			return func() {
				for i := uint64(0); i < rows; i++ {
					for j := uint64(0); j < cols; j++ {
						cells[i*cols+j] = true
					}
				}
			}, rows * cols
		case SetSingle:
			return func() { cells[ci*cols+cj] = true }, 1
		}
	}

	panic(fmt.Sprintf("unknown workload: %v on %v", c, s))
}
