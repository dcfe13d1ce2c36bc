package bitstream

import (
	"io"
)

// Writer writes bits to an io.Writer.
type Writer struct {
	stream  io.Writer
	pending [1]byte
	offset  uint8
}

// NewWriter returns a Writer positioned at a group boundary.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// Write writes the first numBits of data, LSB first within each byte.
func (w *Writer) Write(data []byte, numBits int) error {
	var idx int
	for ; numBits >= 8; numBits -= 8 {
		if err := w.WriteByte(data[idx]); err != nil {
			return err
		}
		idx++
	}

	for shift := 0; shift < numBits; shift++ {
		if err := w.WriteBit(data[idx]>>shift&1 == 1); err != nil {
			return err
		}
	}

	return nil
}

// WriteByte writes 8 bits regardless of the current offset.
func (w *Writer) WriteByte(b byte) error {
	w.pending[0] |= b << w.offset
	if err := w.emit(); err != nil {
		return err
	}
	if w.offset != 0 {
		w.pending[0] = b >> (8 - w.offset)
	}
	return nil
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit Bit) error {
	if bit {
		w.pending[0] |= 1 << w.offset
	}

	w.offset++
	if w.offset < 8 {
		return nil
	}

	w.offset = 0
	return w.emit()
}

// Flush pads the pending group with bit and writes it out.
func (w *Writer) Flush(pad Bit) error {
	for w.offset != 0 {
		if err := w.WriteBit(pad); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) emit() error {
	n, err := w.stream.Write(w.pending[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	w.pending[0] = 0
	return nil
}
