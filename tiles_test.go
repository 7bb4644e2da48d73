package fblayout

import (
	"errors"
	"testing"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/fblayout/tiling"
)

func TestIntelTiles(t *testing.T) {
	tests := []struct {
		name string
		gen  tiling.Generation
		mod  modifier.Modifier
		bpp  uint32
		w, h uint32
	}{
		{"linear", tiling.Gen4Plus, modifier.Linear, 32, 64, 1},
		{"x gen2", tiling.Gen2, modifier.IntelX, 32, 128, 16},
		{"x", tiling.Gen4Plus, modifier.IntelX, 32, 512, 8},
		{"y 915", tiling.Gen3_915, modifier.IntelY, 32, 512, 8},
		{"y", tiling.Gen4Plus, modifier.IntelY, 32, 128, 32},
		{"y ccs", tiling.Gen4Plus, modifier.IntelYCCS, 8, 128, 32},
		{"yf 8", tiling.Gen4Plus, modifier.IntelYf, 8, 64, 64},
		{"yf 64", tiling.Gen4Plus, modifier.IntelYfCCS, 64, 256, 16},
		{"4 mtl", tiling.Gen4Plus, modifier.Intel4MTLMCCCS, 16, 128, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := IntelTiles{Generation: tt.gen}.TileSize(tt.mod, tt.bpp)
			if err != nil {
				t.Fatalf("TileSize() error = %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("TileSize() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}

	if _, _, err := (IntelTiles{}).TileSize(modifier.BroadcomVC4TTiled, 32); !errors.Is(err, modifier.ErrUnsupportedModifier) {
		t.Errorf("broadcom on intel error = %v", err)
	}
}

func TestAMDTiles(t *testing.T) {
	amd := modifier.Make(modifier.VendorAMD, 0x1)
	tests := []struct {
		bpp  uint32
		w, h uint32
	}{
		{8, 256, 256},
		{16, 512, 128},
		{32, 512, 128},
		{64, 1024, 64},
		{128, 1024, 64},
	}

	for _, tt := range tests {
		w, h, err := AMDTiles{}.TileSize(amd, tt.bpp)
		if err != nil {
			t.Fatalf("TileSize(%d) error = %v", tt.bpp, err)
		}
		if w != tt.w || h != tt.h {
			t.Errorf("TileSize(%d) = %dx%d, want %dx%d", tt.bpp, w, h, tt.w, tt.h)
		}
		if uint64(w)*uint64(h) != 64<<10 {
			t.Errorf("TileSize(%d) is not a 64 KiB tile", tt.bpp)
		}
	}

	if _, _, err := (AMDTiles{}).TileSize(amd, 24); !errors.Is(err, tiling.ErrUnsupportedConfiguration) {
		t.Errorf("24 bpp error = %v", err)
	}
	if got := (AMDTiles{}).StrideAlign(amd, true); got != 256 {
		t.Errorf("StrideAlign(yuv) = %d, want 256", got)
	}
	if got := (AMDTiles{}).StrideAlign(amd, false); got != 0 {
		t.Errorf("StrideAlign(rgb) = %d, want 0", got)
	}
}

func TestAMDPlan(t *testing.T) {
	dev := Device{Vendor: modifier.VendorAMD}
	amd := modifier.Make(modifier.VendorAMD, 0x1)

	l := mustPlan(t, 100, 100, fourcc.XRGB8888, amd, dev)
	if l.Planes[0].Stride != 512 || l.Size != 512*128 {
		t.Errorf("tiled: stride %d size %d, want 512 and %d", l.Planes[0].Stride, l.Size, 512*128)
	}

	l = mustPlan(t, 100, 100, fourcc.NV12, modifier.Linear, dev)
	for i, p := range l.Planes {
		if p.Stride != 256 {
			t.Errorf("yuv plane %d stride = %d, want 256", i, p.Stride)
		}
	}
}

func TestBroadcomTiles(t *testing.T) {
	tests := []struct {
		name string
		mod  modifier.Modifier
		w, h uint32
	}{
		{"t-tiled", modifier.BroadcomVC4TTiled, 128, 32},
		{"sand32", modifier.BroadcomSAND(modifier.BroadcomSAND32, 64), 32, 64},
		{"sand128", modifier.BroadcomSAND(modifier.BroadcomSAND128, 96), 128, 96},
		{"sand256", modifier.BroadcomSAND(modifier.BroadcomSAND256, 1080), 256, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := BroadcomTiles{}.TileSize(tt.mod, 8)
			if err != nil {
				t.Fatalf("TileSize() error = %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("TileSize() = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}

	if _, _, err := (BroadcomTiles{}).TileSize(modifier.BroadcomSAND64, 8); !errors.Is(err, tiling.ErrUnsupportedConfiguration) {
		t.Errorf("SAND without column height error = %v", err)
	}

	l := mustPlan(t, 100, 100, fourcc.XRGB8888, modifier.BroadcomVC4TTiled, Device{Vendor: modifier.VendorBroadcom})
	if l.Planes[0].Stride != 512 || l.Size != 512*128 {
		t.Errorf("vc4: stride %d size %d", l.Planes[0].Stride, l.Size)
	}
}

func TestNVIDIATiles(t *testing.T) {
	blk := modifier.NVIDIABlockLinear2D(0, 1, 2, 0x06, 4)
	w, h, err := NVIDIATiles{}.TileSize(blk, 32)
	if err != nil {
		t.Fatalf("TileSize() error = %v", err)
	}
	if w != 64 || h != 128 {
		t.Errorf("TileSize() = %dx%d, want 64x128", w, h)
	}

	w, h, err = NVIDIATiles{}.TileSize(modifier.NVIDIA16BX2Block(1), 32)
	if err != nil || w != 64 || h != 16 {
		t.Errorf("legacy TileSize() = %dx%d, %v; want 64x16", w, h, err)
	}

	if _, _, err := (NVIDIATiles{}).TileSize(modifier.NVIDIA16BX2Block(7), 32); !errors.Is(err, modifier.ErrUnsupportedModifier) {
		t.Errorf("block height 7 error = %v", err)
	}

	tests := []struct {
		chipset uint32
		stride  uint32
	}{
		{0x120, 512},
		{NouveauChipsetGV100, 448},
		{0x170, 448},
	}
	for _, tt := range tests {
		dev := Device{Vendor: modifier.VendorNVIDIA, NouveauChipset: tt.chipset}
		l := mustPlan(t, 100, 10, fourcc.XRGB8888, modifier.Linear, dev)
		if got := l.Planes[0].Stride; got != tt.stride {
			t.Errorf("chipset %#x stride = %d, want %d", tt.chipset, got, tt.stride)
		}
	}

	dev := Device{Vendor: modifier.VendorNVIDIA, NouveauChipset: 0x170}
	l := mustPlan(t, 100, 100, fourcc.XRGB8888, blk, dev)
	if l.Planes[0].Stride != 448 || l.Size != 448*128 {
		t.Errorf("block linear: stride %d size %d", l.Planes[0].Stride, l.Size)
	}
}

func TestLinearTiles(t *testing.T) {
	w, h, err := LinearTiles{}.TileSize(modifier.Linear, 24)
	if err != nil || w != 1 || h != 1 {
		t.Errorf("TileSize(linear) = %dx%d, %v", w, h, err)
	}
	if _, _, err := (LinearTiles{}).TileSize(modifier.IntelX, 32); !errors.Is(err, modifier.ErrUnsupportedModifier) {
		t.Errorf("TileSize(x) error = %v", err)
	}

	l := mustPlan(t, 33, 3, fourcc.RGB888, modifier.Linear, Device{})
	if l.Planes[0].Stride != 99 || l.Size != 297 {
		t.Errorf("generic linear: stride %d size %d, want 99 and 297", l.Planes[0].Stride, l.Size)
	}
}

// fixedTiles is a TileSizer with a single tile shape.
type fixedTiles struct{ w, h uint32 }

func (f fixedTiles) TileSize(modifier.Modifier, uint32) (uint32, uint32, error) {
	return f.w, f.h, nil
}

func (fixedTiles) StrideAlign(modifier.Modifier, bool) uint32 { return 0 }

func TestDevice_TilesOverride(t *testing.T) {
	dev := Device{Vendor: modifier.VendorIntel, Tiles: fixedTiles{w: 1000, h: 7}}
	l := mustPlan(t, 10, 10, fourcc.XRGB8888, modifier.Linear, dev)
	if l.Planes[0].Stride != 1000 || l.Size != 1000*14 {
		t.Errorf("override: stride %d size %d, want 1000 and 14000", l.Planes[0].Stride, l.Size)
	}
}

func TestDevice_Generation(t *testing.T) {
	tests := []struct {
		dev  Device
		want tiling.Generation
	}{
		{Device{DisplayVersion: 2}, tiling.Gen2},
		{Device{DisplayVersion: 3, Is915: true}, tiling.Gen3_915},
		{Device{DisplayVersion: 3}, tiling.Gen4Plus},
		{Device{DisplayVersion: 12}, tiling.Gen4Plus},
	}
	for _, tt := range tests {
		if got := tt.dev.Generation(); got != tt.want {
			t.Errorf("%+v Generation() = %v, want %v", tt.dev, got, tt.want)
		}
	}
}
