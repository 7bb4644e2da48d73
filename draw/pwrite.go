package draw

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/fblayout"
)

// fillLinearWriter issues one write per row of r.
func fillLinearWriter(w io.WriterAt, p plane, r image.Rectangle, value uint64) error {
	n := r.Dx() * int(p.cpp)
	s := defaultPool.get(p.cpp, value, n)
	defer defaultPool.put(s)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := p.offset(uint32(r.Min.X), uint32(y))
		if _, err := w.WriteAt(s.buf, int64(off)); err != nil {
			return fmt.Errorf("draw: write row %d: %w", y, err)
		}
	}
	return nil
}

// fillTiledWriter walks the tiled plane in memory order. Each position is
// mapped back to its pixel; consecutive positions inside r are staged and
// written as one run. A run ends when the staging buffer is full or the
// next position falls outside r.
func fillTiledWriter(w io.WriterAt, p plane, r image.Rectangle, value uint64) error {
	s := defaultPool.get(p.cpp, value, StagingSize-StagingSize%int(p.cpp))
	defer defaultPool.put(s)

	var (
		remaining = uint64(r.Dx()) * uint64(r.Dy())
		runStart  uint64
		runLen    int
		writes    int
	)
	flush := func() error {
		if runLen == 0 {
			return nil
		}
		if _, err := w.WriteAt(s.buf[:runLen], int64(p.Offset+runStart)); err != nil {
			return fmt.Errorf("draw: write at %d: %w", p.Offset+runStart, err)
		}
		writes++
		runLen = 0
		return nil
	}

	cpp := uint64(p.cpp)
	for pos := uint64(0); pos+cpp <= p.Size && remaining > 0; pos += cpp {
		x, y := p.surface.Coord(pos)
		if !image.Pt(int(x), int(y)).In(r) {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		if runLen == 0 {
			runStart = pos
		}
		runLen += int(cpp)
		remaining--
		if runLen == len(s.buf) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	if log := fblayout.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("draw: tiled fill", slog.Any("rect", r), slog.Int("writes", writes))
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %d pixels not reached within plane size", ErrOutOfBounds, remaining)
	}
	return nil
}
