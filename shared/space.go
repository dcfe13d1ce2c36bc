package shared

import (
	"fmt"

	"github.com/shirou/gopsutil/mem"
)

// AvailableMemory returns the amount of memory, in bytes, that can be
// allocated without swapping.
func AvailableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to read memory stats: %w", err)
	}
	return vm.Available, nil
}

// PackedSize returns the number of bytes a rows x cols grid occupies when
// packed at one bit per cell.
func PackedSize(rows, cols uint64) uint64 {
	return NumGroups(rows * cols)
}

// UnpackedSize returns the number of bytes a []bool of rows x cols occupies.
func UnpackedSize(rows, cols uint64) uint64 {
	return rows * cols * BoolSize
}
