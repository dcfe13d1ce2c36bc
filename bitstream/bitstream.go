// Package bitstream wraps io.Writer and io.Reader with bit-granularity access,
// least-significant bit first. This is the same order bitgrid uses within a
// group, so a row-major stream of cells maps one-to-one onto grid storage.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
