package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
)

// formatsCmd implements subcommands.Command for the "formats" command.
type formatsCmd struct {
	yuv bool
}

// Name implements subcommands.Command.Name.
func (*formatsCmd) Name() string { return "formats" }

// Synopsis implements subcommands.Command.Synopsis.
func (*formatsCmd) Synopsis() string { return "list the pixel format catalog" }

// Usage implements subcommands.Command.Usage.
func (*formatsCmd) Usage() string { return "formats [-yuv]\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (c *formatsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yuv, "yuv", true, "include YUV formats")
}

// Execute implements subcommands.Command.Execute.
func (c *formatsCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFOURCC\tDEPTH\tPLANES\tBPP\tSUBSAMPLING")
	for _, code := range fourcc.Formats(c.yuv) {
		d, _ := fourcc.Lookup(code)
		bpp := make([]string, d.NumPlanes)
		for i := range bpp {
			bpp[i] = strconv.FormatUint(uint64(d.PlaneBPP[i]), 10)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%dx%d\n",
			d.Name, code.Chars(), d.Depth, d.NumPlanes, strings.Join(bpp, "/"), d.HSub, d.VSub)
	}
	if err := tw.Flush(); err != nil {
		return fatalf("formats: %v", err)
	}
	return subcommands.ExitSuccess
}

// modifiersCmd implements subcommands.Command for the "modifiers" command.
type modifiersCmd struct{}

// Name implements subcommands.Command.Name.
func (*modifiersCmd) Name() string { return "modifiers" }

// Synopsis implements subcommands.Command.Synopsis.
func (*modifiersCmd) Synopsis() string { return "list the supported modifiers" }

// Usage implements subcommands.Command.Usage.
func (*modifiersCmd) Usage() string { return "modifiers\n" }

// SetFlags implements subcommands.Command.SetFlags.
func (*modifiersCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*modifiersCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tNAME\tSHORT\tLAYOUT")
	for _, m := range modifier.Modifiers() {
		d, err := modifier.Decode(m)
		if err != nil {
			return fatalf("modifiers: %v", err)
		}
		fmt.Fprintf(tw, "%#018x\t%s\t%s\t%s\n", uint64(m), m, m.Name(), d)
	}
	if err := tw.Flush(); err != nil {
		return fatalf("modifiers: %v", err)
	}
	return subcommands.ExitSuccess
}
