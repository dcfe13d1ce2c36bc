package bitstream

import (
	"io"
)

// Reader reads bits from an io.Reader.
type Reader struct {
	stream  io.Reader
	pending [1]byte
	// remaining is the number of unread bits in pending.
	remaining uint8
}

// NewReader returns a Reader positioned at a group boundary.
func NewReader(r io.Reader) *Reader {
	return &Reader{stream: r}
}

// Read reads the next numBits, packing them LSB first into the returned bytes.
// A trailing partial byte holds its bits in the low positions.
func (r *Reader) Read(numBits uint) ([]byte, error) {
	data := make([]byte, (numBits+7)/8)

	var idx int
	for ; numBits >= 8; numBits -= 8 {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		data[idx] = b
		idx++
	}

	for shift := uint(0); shift < numBits; shift++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit {
			data[idx] |= 1 << shift
		}
	}

	return data, nil
}

// ReadByte reads the next 8 bits regardless of the current offset.
// It returns io.EOF if fewer than 8 bits are left.
func (r *Reader) ReadByte() (byte, error) {
	if r.remaining == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		return r.pending[0], nil
	}

	// Unaligned: the low bits come from what is left of the current group,
	// the high bits from the low bits of the next one.
	current := r.pending[0]
	if err := r.fill(); err != nil {
		return 0, err
	}
	current |= r.pending[0] << r.remaining
	r.pending[0] >>= 8 - r.remaining
	return current, nil
}

// ReadBit reads a single bit. It returns io.EOF once the stream is drained.
func (r *Reader) ReadBit() (Bit, error) {
	if r.remaining == 0 {
		if err := r.fill(); err != nil {
			return Zero, err
		}
		r.remaining = 8
	}

	bit := Bit(r.pending[0]&1 == 1)
	r.pending[0] >>= 1
	r.remaining--
	return bit, nil
}

func (r *Reader) fill() error {
	_, err := io.ReadFull(r.stream, r.pending[:])
	return err
}
