package benchmark

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bitgrid"
	"github.com/spacemeshos/bitgrid/config"
)

func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Rows = 12
	cfg.Cols = 20
	cfg.Iterations = 3
	return *cfg
}

func TestPatternDensity(t *testing.T) {
	r := require.New(t)
	buf := make([]byte, 64)

	_, err := io.ReadFull(NewPattern(1, 0), buf)
	r.NoError(err)
	r.Equal(make([]byte, 64), buf)

	_, err = io.ReadFull(NewPattern(1, 1), buf)
	r.NoError(err)
	r.Equal(bytes.Repeat([]byte{0xFF}, 64), buf)
}

func TestPatternDeterministic(t *testing.T) {
	a, b := make([]byte, 128), make([]byte, 128)

	_, err := io.ReadFull(NewPattern(7, 0.3), a)
	require.NoError(t, err)
	_, err = io.ReadFull(NewPattern(7, 0.3), b)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFill(t *testing.T) {
	r := require.New(t)

	// Row-major, LSB first: 0x05 sets cells 0 and 2 of the first row.
	g := bitgrid.New(2, 4)
	r.NoError(Fill(g, bytes.NewReader([]byte{0x05})))

	r.True(g.Get(0, 0))
	r.False(g.Get(0, 1))
	r.True(g.Get(0, 2))
	r.False(g.Get(0, 3))
	for j := uint64(0); j < 4; j++ {
		r.False(g.Get(1, j))
	}

	r.Equal([]bool{true, false, true, false, false, false, false, false}, unpack(g))
}

func TestFillShortSource(t *testing.T) {
	g := bitgrid.New(3, 3)
	err := Fill(g, bytes.NewReader([]byte{0xFF}))
	require.Error(t, err)
	require.True(t, errors.Is(err, io.EOF))
	require.True(t, g.Get(2, 1))
}

func TestRun(t *testing.T) {
	r := require.New(t)
	logger := zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))
	cfg := smallConfig()

	results, err := Run(context.Background(), cfg, WithLogger(logger))
	r.NoError(err)
	r.Len(results, len(Cases)*len(Subjects))

	for _, res := range results {
		r.Equal(cfg.Iterations, res.Iterations)
		switch res.Case {
		case GetAll, SetAll:
			r.Equal(uint64(cfg.Iterations)*cfg.Rows*cfg.Cols, res.Ops)
		default:
			r.Equal(uint64(cfg.Iterations), res.Ops)
		}
	}

	r.Equal(GetAll, results[0].Case)
	r.Equal(Packed, results[0].Subject)
	r.Equal(Bool, results[1].Subject)
}

func TestRunCases(t *testing.T) {
	results, err := Run(context.Background(), smallConfig(), WithCases(SetSingle))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, SetSingle, results[0].Case)
	require.Equal(t, SetSingle, results[1].Case)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Rows = 0

	_, err := Run(context.Background(), cfg)
	require.Error(t, err)
}

func TestResultPerOp(t *testing.T) {
	require.Zero(t, Result{}.PerOp())
	require.Equal(t, int64(5), int64(Result{Ops: 4, Elapsed: 20}.PerOp()))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "get-all", GetAll.String())
	require.Equal(t, "set-single", SetSingle.String())
	require.Equal(t, "case(9)", Case(9).String())
	require.Equal(t, "packed", Packed.String())
	require.Equal(t, "bool", Bool.String())
	require.Equal(t, "subject(5)", Subject(5).String())
}

func TestWorkloadUnknown(t *testing.T) {
	g := bitgrid.New(1, 1)
	require.Panics(t, func() { workload(Case(9), Packed, g, unpack(g)) })
}
