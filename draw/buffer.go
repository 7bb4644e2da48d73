package draw

import (
	"fmt"
	"io"
	"sync"
)

// Buffer is an in-memory framebuffer. It serves both as a Mapping and as an
// io.WriterAt, and counts write calls so the cost of a fill can be checked.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

// NewBuffer returns a zeroed buffer of size bytes.
func NewBuffer(size uint64) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Bytes returns the backing memory.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// WriteAt implements io.WriterAt. Writes past the end fail without a
// partial copy.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if off < 0 || off+int64(len(p)) > int64(len(b.data)) {
		return 0, fmt.Errorf("%w: write [%d, %d) of %d", ErrOutOfBounds, off, off+int64(len(p)), len(b.data))
	}
	b.writes++
	return copy(b.data[off:], p), nil
}

// ReadAt implements io.ReaderAt.
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if off < 0 || off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Writes returns the number of WriteAt calls since the last ResetStats.
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// ResetStats clears the write counter.
func (b *Buffer) ResetStats() {
	b.mu.Lock()
	b.writes = 0
	b.mu.Unlock()
}
