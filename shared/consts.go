package shared

const (
	// GroupBits is the number of cells packed into one storage group (byte).
	GroupBits = 8

	// BoolSize is the in-memory size of a Go bool, in bytes.
	BoolSize = 1
)
