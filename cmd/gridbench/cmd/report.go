package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"

	"github.com/spacemeshos/bitgrid/benchmark"
	"github.com/spacemeshos/bitgrid/config"
)

func report(w io.Writer, cfg *config.Config, results []benchmark.Result) {
	fmt.Fprintf(w, "\n\nBENCHMARKS: %d x %d, iterations=%d, seed=%d, density=%v\n",
		cfg.Rows, cfg.Cols, cfg.Iterations, cfg.Seed, cfg.Density)

	baseline := make(map[benchmark.Case]time.Duration)
	for _, res := range results {
		if res.Subject == benchmark.Bool {
			baseline[res.Case] = res.PerOp()
		}
	}

	data := make([][]string, 0, len(results))
	for _, res := range results {
		ratio := "-"
		if base, ok := baseline[res.Case]; ok && base > 0 && res.Subject != benchmark.Bool {
			ratio = strconv.FormatFloat(float64(res.PerOp())/float64(base), 'f', 2, 64)
		}
		data = append(data, []string{
			res.Case.String(),
			res.Subject.String(),
			strconv.Itoa(res.Iterations),
			res.Elapsed.Round(time.Microsecond).String(),
			res.PerOp().String(),
			ratio,
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"case", "subject", "iterations", "total", "per-op", "vs-bool"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()

	reportFootprint(w, cfg)
}

func reportFootprint(w io.Writer, cfg *config.Config) {
	packed, unpacked := cfg.Footprint()

	saved := "-"
	if unpacked > 0 {
		saved = strconv.FormatFloat(100*(1-float64(packed)/float64(unpacked)), 'f', 1, 64) + "%"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"subject", "bytes", "size", "saved"})
	table.SetBorder(true)
	table.AppendBulk([][]string{
		{benchmark.Packed.String(), strconv.FormatUint(packed, 10), bytefmt.ByteSize(packed), saved},
		{benchmark.Bool.String(), strconv.FormatUint(unpacked, 10), bytefmt.ByteSize(unpacked), "-"},
	})
	table.Render()
}
