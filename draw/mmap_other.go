//go:build !unix

package draw

import (
	"errors"
	"fmt"
	"os"
)

// FileMapping holds a file read fully into memory. Bytes are written back
// on Close.
type FileMapping struct {
	path string
	data []byte
}

// MapFile reads the first size bytes of the file at path.
func MapFile(path string, size uint64) (*FileMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if uint64(len(data)) < size {
		data = append(data, make([]byte, size-uint64(len(data)))...)
	}
	return &FileMapping{path: path, data: data[:size]}, nil
}

// Bytes returns the buffered memory.
func (m *FileMapping) Bytes() []byte { return m.data }

// Close writes the buffer back to the file.
func (m *FileMapping) Close() error {
	if err := os.WriteFile(m.path, m.data, 0o644); err != nil {
		return fmt.Errorf("draw: write back %s: %w", m.path, err)
	}
	return nil
}
