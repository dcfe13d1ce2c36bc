package bitgrid_test

import (
	"testing"

	"github.com/spacemeshos/bitgrid"
)

const (
	benchRows = 500
	benchCols = 100
	benchRow  = 250
	benchCol  = 50
)

var sink bool

func BenchmarkGetAll(b *testing.B) {
	g := bitgrid.New(benchRows, benchCols)
	for n := 0; n < b.N; n++ {
		for i := uint64(0); i < benchRows; i++ {
			for j := uint64(0); j < benchCols; j++ {
				sink = g.Get(i, j)
			}
		}
	}
}

func BenchmarkGetSingle(b *testing.B) {
	g := bitgrid.New(benchRows, benchCols)
	for n := 0; n < b.N; n++ {
		sink = g.Get(benchRow, benchCol)
	}
}

func BenchmarkSetAll(b *testing.B) {
	g := bitgrid.New(benchRows, benchCols)
	for n := 0; n < b.N; n++ {
		for i := uint64(0); i < benchRows; i++ {
			for j := uint64(0); j < benchCols; j++ {
				g.Set(i, j, true)
			}
		}
	}
}

func BenchmarkSetSingle(b *testing.B) {
	g := bitgrid.New(benchRows, benchCols)
	for n := 0; n < b.N; n++ {
		g.Set(benchRow, benchCol, true)
	}
}

// Baselines over a plain []bool of the same shape.

func BenchmarkGetAllBool(b *testing.B) {
	a := make([]bool, benchRows*benchCols)
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchRows; i++ {
			for j := 0; j < benchCols; j++ {
				sink = a[i*benchCols+j]
			}
		}
	}
}

func BenchmarkGetSingleBool(b *testing.B) {
	a := make([]bool, benchRows*benchCols)
	for n := 0; n < b.N; n++ {
		sink = a[benchRow*benchCols+benchCol]
	}
}

func BenchmarkSetAllBool(b *testing.B) {
	a := make([]bool, benchRows*benchCols)
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchRows; i++ {
			for j := 0; j < benchCols; j++ {
				a[i*benchCols+j] = true
			}
		}
	}
}

func BenchmarkSetSingleBool(b *testing.B) {
	a := make([]bool, benchRows*benchCols)
	for n := 0; n < b.N; n++ {
		a[benchRow*benchCols+benchCol] = true
	}
}
