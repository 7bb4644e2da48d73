// Command fbplan plans framebuffer layouts and exercises the tiled address
// transforms from the command line.
//
// Usage:
//
//	fbplan [-v] [-profiles file.toml] <command> [flags]
//
// Commands are plan, formats, modifiers, verify and fill.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fblayout"
	"github.com/gogpu/fblayout/internal/profile"
)

// env is shared by all commands.
type env struct {
	profiles string
	printer  *message.Printer
}

func (e *env) device(name string) (fblayout.Device, error) {
	return profile.Device(name, e.profiles)
}

func main() {
	var (
		verbose  = flag.Bool("v", false, "log planner decisions at debug level")
		profiles = flag.String("profiles", "", "TOML file with extra device profiles")
	)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(planCmd), "")
	subcommands.Register(new(formatsCmd), "catalog")
	subcommands.Register(new(modifiersCmd), "catalog")
	subcommands.Register(new(verifyCmd), "")
	subcommands.Register(new(fillCmd), "")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	fblayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	e := &env{
		profiles: *profiles,
		printer:  message.NewPrinter(language.English),
	}
	os.Exit(int(subcommands.Execute(context.Background(), e)))
}

// fatalf reports an error and returns the failure status.
func fatalf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "fbplan: "+format+"\n", args...)
	return subcommands.ExitFailure
}
