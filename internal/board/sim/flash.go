package sim

import (
	"fmt"
	"io"
	"os"
)

// FlashSize is the program flash of the board, 2 MiB.
const FlashSize = 0x200000

// Flash is read-only program memory.
type Flash struct {
	data []byte
}

// NewPatternFlash fills the flash with a deterministic address pattern.
func NewPatternFlash() *Flash {
	data := make([]byte, FlashSize)
	for i := range data {
		data[i] = byte(i ^ i>>8 ^ i>>16)
	}

	return &Flash{data: data}
}

// LoadFlash reads an image file. Bytes past its end read as erased (0xFF).
func LoadFlash(path string) (*Flash, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flash image: %w", err)
	}

	if len(image) > FlashSize {
		return nil, fmt.Errorf("flash image %q is %d bytes, larger than %d", path, len(image), FlashSize)
	}

	data := make([]byte, FlashSize)
	n := copy(data, image)

	for i := n; i < len(data); i++ {
		data[i] = 0xFF
	}

	return &Flash{data: data}, nil
}

// OpenFlash loads path, or the pattern when path is empty.
func OpenFlash(path string) (*Flash, error) {
	if path == "" {
		return NewPatternFlash(), nil
	}

	return LoadFlash(path)
}

// ReadAt implements io.ReaderAt.
func (f *Flash) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(f.data)) {
		return 0, io.EOF
	}

	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

// Size returns the flash size in bytes.
func (f *Flash) Size() int {
	return len(f.data)
}
