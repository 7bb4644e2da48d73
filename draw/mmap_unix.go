//go:build unix

package draw

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FileMapping is a shared read-write memory mapping of a file.
type FileMapping struct {
	f    *os.File
	data []byte
}

// MapFile maps the first size bytes of the file at path, growing the file
// if it is shorter.
func MapFile(path string, size uint64) (*FileMapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if uint64(info.Size()) < size {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, fmt.Errorf("draw: grow %s: %w", path, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("draw: mmap %s: %w", path, err)
	}
	return &FileMapping{f: f, data: data}, nil
}

// Bytes returns the mapped memory.
func (m *FileMapping) Bytes() []byte { return m.data }

// Close unmaps the memory and closes the file.
func (m *FileMapping) Close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
