package main

import (
	"context"
	"flag"
	"image"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/gogpu/fblayout/draw"
)

// fillCmd implements subcommands.Command for the "fill" command.
type fillCmd struct {
	layoutFlags
	plane   int
	swizzle uint
	rect    rectFlag
	color   string
}

// Name implements subcommands.Command.Name.
func (*fillCmd) Name() string { return "fill" }

// Synopsis implements subcommands.Command.Synopsis.
func (*fillCmd) Synopsis() string { return "plan a framebuffer in a file and fill a rectangle" }

// Usage implements subcommands.Command.Usage.
func (*fillCmd) Usage() string {
	return "fill [layout flags] [-plane n] [-rect x0,y0,x1,y1] [-color 0xRRGGBB] <file>\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *fillCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.IntVar(&c.plane, "plane", 0, "plane index")
	f.UintVar(&c.swizzle, "swizzle", 0, "bit-6 swizzle mode (0 none, 1 bit 9, 2 bits 9/10, 3 bits 9/11, ...)")
	f.Var(&c.rect, "rect", "rectangle x0,y0,x1,y1 (default: whole plane)")
	f.StringVar(&c.color, "color", "0xffffffff", "raw pixel value")
}

// Execute implements subcommands.Command.Execute.
func (c *fillCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	e := args[0].(*env)

	value, err := strconv.ParseUint(c.color, 0, 64)
	if err != nil {
		return fatalf("fill: bad color: %v", err)
	}
	swizzle, err := parseSwizzle(c.swizzle)
	if err != nil {
		return fatalf("fill: %v", err)
	}
	l, err := c.plan(e)
	if err != nil {
		return fatalf("fill: %v", err)
	}
	if c.plane < 0 || c.plane >= len(l.Planes) {
		return fatalf("fill: plane %d of %d", c.plane, len(l.Planes))
	}

	m, err := draw.MapFile(f.Arg(0), l.Size)
	if err != nil {
		return fatalf("fill: %v", err)
	}
	r := image.Rectangle(c.rect)
	if r.Empty() {
		p := l.Planes[c.plane]
		r = image.Rect(0, 0, int(p.Width), int(p.Height))
	}

	t := draw.Target{Layout: l, Plane: c.plane, Swizzle: swizzle, Mapping: m}
	ferr := draw.FillRect(t, r, value)
	if err := m.Close(); err != nil && ferr == nil {
		ferr = err
	}
	if ferr != nil {
		return fatalf("fill: %v", ferr)
	}

	printLayout(os.Stdout, e, l)
	e.printer.Fprintf(os.Stdout, "filled %v with %#x\n", r, value)
	return subcommands.ExitSuccess
}

// rectFlag parses "x0,y0,x1,y1".
type rectFlag image.Rectangle

func (r *rectFlag) String() string { return image.Rectangle(*r).String() }

func (r *rectFlag) Set(s string) error {
	var v [4]int
	if err := parseInts(s, v[:]); err != nil {
		return err
	}
	*r = rectFlag(image.Rect(v[0], v[1], v[2], v[3]))
	return nil
}
