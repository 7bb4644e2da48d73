package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/gogpu/fblayout"
	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
)

// layoutFlags are the flags shared by plan and fill.
type layoutFlags struct {
	device   string
	format   string
	modifier string
	width    uint
	height   uint
	stride   uint
	size     uint64
}

func (lf *layoutFlags) register(f *flag.FlagSet) {
	f.StringVar(&lf.device, "device", "skl", "device profile name")
	f.StringVar(&lf.format, "format", "XRGB8888", "pixel format name")
	f.StringVar(&lf.modifier, "modifier", "linear", "modifier name, macro or number")
	f.UintVar(&lf.width, "width", 1920, "width in pixels")
	f.UintVar(&lf.height, "height", 1080, "height in pixels")
	f.UintVar(&lf.stride, "stride", 0, "force the stride of plane 0")
	f.Uint64Var(&lf.size, "size", 0, "force the total buffer size")
}

func (lf *layoutFlags) plan(e *env) (*fblayout.Layout, error) {
	dev, err := e.device(lf.device)
	if err != nil {
		return nil, err
	}
	desc, ok := fourcc.LookupName(lf.format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", fblayout.ErrUnknownFormat, lf.format)
	}
	mod, err := modifier.Parse(lf.modifier)
	if err != nil {
		return nil, err
	}

	var opts []fblayout.PlanOption
	if lf.stride != 0 {
		opts = append(opts, fblayout.WithStride(0, uint32(lf.stride)))
	}
	if lf.size != 0 {
		opts = append(opts, fblayout.WithSize(lf.size))
	}
	return fblayout.Plan(uint32(lf.width), uint32(lf.height), desc.Code, mod, dev, opts...)
}

// planCmd implements subcommands.Command for the "plan" command.
type planCmd struct {
	layoutFlags
}

// Name implements subcommands.Command.Name.
func (*planCmd) Name() string { return "plan" }

// Synopsis implements subcommands.Command.Synopsis.
func (*planCmd) Synopsis() string { return "print the plane layout of a framebuffer" }

// Usage implements subcommands.Command.Usage.
func (*planCmd) Usage() string {
	return "plan [-device name] [-format name] [-modifier name] [-width w] [-height h]\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *planCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

// Execute implements subcommands.Command.Execute.
func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	e := args[0].(*env)

	l, err := c.plan(e)
	if err != nil {
		return fatalf("plan: %v", err)
	}
	printLayout(os.Stdout, e, l)
	if err := l.Validate(); err != nil {
		return fatalf("plan: %v", err)
	}
	return subcommands.ExitSuccess
}

func printLayout(w io.Writer, e *env, l *fblayout.Layout) {
	p := e.printer
	p.Fprintf(w, "%s %dx%d on %s\n", l.Format, l.Width, l.Height, l.Device().Name)
	p.Fprintf(w, "modifier %s (%#x)\n", l.Modifier, uint64(l.Modifier))
	for i, pl := range l.Planes {
		p.Fprintf(w, "plane %d  %-11s %5dx%-5d bpp %-2d stride %7d offset %12d size %12d\n",
			i, pl.Kind, pl.Width, pl.Height, pl.BPP, pl.Stride, pl.Offset, pl.Size)
	}
	p.Fprintf(w, "total %d bytes\n", l.Size)
}
