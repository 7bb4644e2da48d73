// Package profile loads device descriptions for the layout planner from
// TOML.
//
// A profile file holds an array of [[profile]] tables:
//
//	[[profile]]
//	name = "dg2"
//	vendor = "intel"
//	display_version = 13
//	flat_ccs = true
//
// A set of built-in profiles covers the common Intel generations and one
// device per other vendor.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/fblayout"
	"github.com/gogpu/fblayout/modifier"
)

// ErrUnknownProfile is returned when a name matches no profile.
var ErrUnknownProfile = errors.New("profile: unknown profile")

// Profile is the TOML form of a fblayout.Device.
type Profile struct {
	Name           string          `toml:"name"`
	Vendor         modifier.Vendor `toml:"vendor"`
	DisplayVersion int             `toml:"display_version"`
	Is915          bool            `toml:"is_915"`
	FlatCCS        bool            `toml:"flat_ccs"`
	Xe             bool            `toml:"xe"`
	AllocAlignment uint64          `toml:"alloc_alignment"`
	NouveauChipset uint32          `toml:"nouveau_chipset"`
}

// Device returns the planner device described by p.
func (p Profile) Device() fblayout.Device {
	return fblayout.Device{
		Name:           p.Name,
		Vendor:         p.Vendor,
		DisplayVersion: p.DisplayVersion,
		Is915:          p.Is915,
		FlatCCS:        p.FlatCCS,
		Xe:             p.Xe,
		AllocAlignment: p.AllocAlignment,
		NouveauChipset: p.NouveauChipset,
	}
}

func (p Profile) validate() error {
	if p.Name == "" {
		return errors.New("profile: missing name")
	}
	if p.Vendor == modifier.VendorIntel && p.DisplayVersion <= 0 {
		return fmt.Errorf("profile: %s: intel profile needs display_version", p.Name)
	}
	if p.Is915 && p.DisplayVersion != 3 {
		return fmt.Errorf("profile: %s: is_915 requires display_version 3", p.Name)
	}
	if a := p.AllocAlignment; a != 0 && a&(a-1) != 0 {
		return fmt.Errorf("profile: %s: alloc_alignment %d is not a power of two", p.Name, a)
	}
	return nil
}

type file struct {
	Profiles []Profile `toml:"profile"`
}

// Decode reads profiles from r. Unknown keys are rejected.
func Decode(r io.Reader) ([]Profile, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("profile: unknown key %q", undec[0].String())
	}

	seen := make(map[string]bool, len(f.Profiles))
	for _, p := range f.Profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("profile: duplicate profile %q", p.Name)
		}
		seen[p.Name] = true
	}
	return f.Profiles, nil
}

// Load reads the profile file at path.
func Load(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

//go:embed builtin.toml
var builtinTOML string

var builtins = func() []Profile {
	p, err := Decode(strings.NewReader(builtinTOML))
	if err != nil {
		panic(err)
	}
	return p
}()

// Builtin returns the built-in profiles in declaration order.
func Builtin() []Profile {
	return slices.Clone(builtins)
}

// Names returns the names of the built-in profiles.
func Names() []string {
	names := make([]string, len(builtins))
	for i, p := range builtins {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a profile by name, searching extra before the built-in
// profiles.
func Lookup(name string, extra ...Profile) (Profile, error) {
	for _, set := range [][]Profile{extra, builtins} {
		for _, p := range set {
			if p.Name == name {
				return p, nil
			}
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Device resolves name to a device. When path is not empty the profiles
// in that file take precedence over the built-in ones.
func Device(name, path string) (fblayout.Device, error) {
	var extra []Profile
	if path != "" {
		var err error
		if extra, err = Load(path); err != nil {
			return fblayout.Device{}, err
		}
	}
	p, err := Lookup(name, extra...)
	if err != nil {
		return fblayout.Device{}, err
	}
	return p.Device(), nil
}
