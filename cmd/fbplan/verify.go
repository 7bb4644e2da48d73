package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fblayout"
	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/internal/profile"
	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/fblayout/tiling"
)

// verifyCmd implements subcommands.Command for the "verify" command.
type verifyCmd struct {
	devices string
	width   uint
	height  uint
	jobs    int
}

// Name implements subcommands.Command.Name.
func (*verifyCmd) Name() string { return "verify" }

// Synopsis implements subcommands.Command.Synopsis.
func (*verifyCmd) Synopsis() string {
	return "plan every format and modifier and check the address round trip"
}

// Usage implements subcommands.Command.Usage.
func (*verifyCmd) Usage() string { return "verify [-devices a,b] [-width w] [-height h] [-j n]\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.devices, "devices", strings.Join(profile.Names(), ","), "comma-separated device profiles")
	f.UintVar(&c.width, "width", 301, "width in pixels")
	f.UintVar(&c.height, "height", 67, "height in pixels")
	f.IntVar(&c.jobs, "j", runtime.GOMAXPROCS(0), "parallel jobs")
}

// Execute implements subcommands.Command.Execute.
func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	e := args[0].(*env)

	var devs []fblayout.Device
	for _, name := range strings.Split(c.devices, ",") {
		d, err := e.device(strings.TrimSpace(name))
		if err != nil {
			return fatalf("verify: %v", err)
		}
		devs = append(devs, d)
	}

	r, err := verify(ctx, devs, uint32(c.width), uint32(c.height), c.jobs)
	e.printer.Fprintf(os.Stdout, "%d layouts checked, %d pixels round-tripped, %d combinations skipped\n",
		r.layouts.Load(), r.pixels.Load(), r.skipped.Load())
	if err != nil {
		return fatalf("verify: %v", err)
	}
	return subcommands.ExitSuccess
}

type report struct {
	layouts atomic.Int64
	pixels  atomic.Int64
	skipped atomic.Int64
}

// verify plans every (device, modifier, format) combination and checks that
// the layout is valid and that Coord inverts Offset on every tiled plane.
// The first failure cancels the remaining work.
func verify(ctx context.Context, devs []fblayout.Device, width, height uint32, jobs int) (*report, error) {
	r := new(report)
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	mods := append([]modifier.Modifier{modifier.Linear}, modifier.Modifiers()...)
	for _, dev := range devs {
		for _, mod := range mods {
			g.Go(func() error {
				for _, format := range fourcc.Formats(true) {
					if err := ctx.Err(); err != nil {
						return err
					}
					if err := verifyOne(r, dev, mod, format, width, height); err != nil {
						return fmt.Errorf("%s %s %s: %w", dev.Name, mod.Name(), format, err)
					}
				}
				return nil
			})
		}
	}
	return r, g.Wait()
}

func verifyOne(r *report, dev fblayout.Device, mod modifier.Modifier, format fourcc.Code, width, height uint32) error {
	l, err := fblayout.Plan(width, height, format, mod, dev)
	switch {
	case errors.Is(err, fblayout.ErrUnsupportedModifier), errors.Is(err, tiling.ErrUnsupportedConfiguration):
		r.skipped.Add(1)
		return nil
	case err != nil:
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	r.layouts.Add(1)

	for i, p := range l.Planes {
		if p.Kind != fblayout.PlaneColor {
			continue
		}
		s, err := l.Surface(i, tiling.SwizzleNone)
		if errors.Is(err, tiling.ErrLinear) || errors.Is(err, tiling.ErrUnsupportedConfiguration) {
			continue
		}
		if err != nil {
			return err
		}
		for y := uint32(0); y < p.Height; y += 1 + p.Height/16 {
			for x := uint32(0); x < p.Width; x += 1 + p.Width/16 {
				off := s.Offset(x, y)
				if off >= p.Size {
					return fmt.Errorf("plane %d: pixel (%d, %d) at %d beyond plane size %d", i, x, y, off, p.Size)
				}
				if gx, gy := s.Coord(off); gx != x || gy != y {
					return fmt.Errorf("plane %d: Coord(Offset(%d, %d)) = (%d, %d)", i, x, y, gx, gy)
				}
				r.pixels.Add(1)
			}
		}
	}
	return nil
}
