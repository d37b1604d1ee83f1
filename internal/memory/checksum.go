// Package memory computes the diagnostic checksum of a memory range.
package memory

import (
	"errors"
	"fmt"
	"io"
)

// chunkSize is the read granularity.
const chunkSize = 4096

// errRange is returned when start is after end.
var errRange = errors.New("start address is after end address")

// Checksum returns the 16-bit sum of every byte from start to end, both inclusive.
func Checksum(r io.ReaderAt, start, end uint32) (uint16, error) {
	if start > end {
		return 0, fmt.Errorf("%w: %#08x > %#08x", errRange, start, end)
	}

	var (
		sum       uint16
		buf       = make([]byte, chunkSize)
		remaining = uint64(end) - uint64(start) + 1
		offset    = int64(start)
	)

	for remaining > 0 {
		n := uint64(len(buf))
		if remaining < n {
			n = remaining
		}

		read, err := r.ReadAt(buf[:n], offset)
		for _, b := range buf[:read] {
			sum += uint16(b)
		}

		if err != nil && !(errors.Is(err, io.EOF) && uint64(read) == n) {
			return 0, fmt.Errorf("read memory at %#08x: %w", offset+int64(read), err)
		}

		remaining -= n
		offset += int64(n)
	}

	return sum, nil
}
