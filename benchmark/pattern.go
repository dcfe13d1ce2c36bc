package benchmark

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spacemeshos/bitgrid"
	"github.com/spacemeshos/bitgrid/bitstream"
)

type pattern struct {
	rnd     *rand.Rand
	density float64
}

// NewPattern returns an endless stream of bytes in which every bit is set
// with probability density. The same seed always yields the same stream.
func NewPattern(seed int64, density float64) io.Reader {
	return &pattern{rnd: rand.New(rand.NewSource(seed)), density: density}
}

func (p *pattern) Read(buf []byte) (int, error) {
	for i := range buf {
		var b byte
		for bit := 0; bit < 8; bit++ {
			if p.rnd.Float64() < p.density {
				b |= 1 << bit
			}
		}
		buf[i] = b
	}
	return len(buf), nil
}

// Fill assigns the grid's cells row-major from the bits of src.
func Fill(g *bitgrid.Grid, src io.Reader) error {
	r := bitstream.NewReader(src)
	for i := uint64(0); i < g.Rows(); i++ {
		for j := uint64(0); j < g.Cols(); j++ {
			bit, err := r.ReadBit()
			if err != nil {
				return fmt.Errorf("failed to read cell (%d,%d): %w", i, j, err)
			}
			g.Set(i, j, bool(bit))
		}
	}
	return nil
}

// unpack copies the grid into a row-major []bool.
func unpack(g *bitgrid.Grid) []bool {
	cells := make([]bool, g.Rows()*g.Cols())
	for i := uint64(0); i < g.Rows(); i++ {
		for j := uint64(0); j < g.Cols(); j++ {
			cells[i*g.Cols()+j] = g.Get(i, j)
		}
	}
	return cells
}
