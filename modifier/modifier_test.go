package modifier

import (
	"errors"
	"testing"

	"github.com/gogpu/fblayout/tiling"
)

func TestMake_Kernel(t *testing.T) {
	tests := []struct {
		name string
		mod  Modifier
		want uint64
	}{
		{"linear", Linear, 0},
		{"invalid", Invalid, 0x00ffffffffffffff},
		{"x", IntelX, 0x0100000000000001},
		{"y-rc-ccs", IntelYGen12RCCCS, 0x0100000000000006},
		{"4", Intel4, 0x0100000000000009},
		{"bmg", Intel4BMGCCS, 0x0100000000000011},
		{"vc4 t-tiled", BroadcomVC4TTiled, 0x0700000000000001},
		{"sand128", BroadcomSAND128, 0x0700000000000004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint64(tt.mod) != tt.want {
				t.Errorf("modifier = %#016x, want %#016x", uint64(tt.mod), tt.want)
			}
		})
	}

	if got := Make(VendorIntel, 0xff00000000000002); got != IntelY {
		t.Errorf("Make() did not mask the value: %#016x", uint64(got))
	}
}

func TestDecodeEncode_Total(t *testing.T) {
	seen := make(map[Descriptor]Modifier)
	for _, m := range Modifiers() {
		t.Run(m.String(), func(t *testing.T) {
			d, err := Decode(m)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if prev, dup := seen[d]; dup {
				t.Fatalf("descriptor %v shared with %v", d, prev)
			}
			seen[d] = m

			back, err := Encode(d)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", d, err)
			}
			if back != m {
				t.Errorf("Encode(Decode(m)) = %v, want %v", back, m)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want Descriptor
	}{
		{Linear, Descriptor{tiling.Linear, CompressionNone, PlatformAny}},
		{IntelYCCS, Descriptor{tiling.Y, CompressionCCS, PlatformGen9}},
		{IntelYfCCS, Descriptor{tiling.Yf, CompressionCCS, PlatformGen9}},
		{IntelYGen12MCCCS, Descriptor{tiling.Y, CompressionMC, PlatformGen12}},
		{Intel4MTLRCCCSCC, Descriptor{tiling.Tile4, CompressionRCClearColor, PlatformMTL}},
		{Intel4LNLCCS, Descriptor{tiling.Tile4, CompressionFlat, PlatformLNL}},
	}

	for _, tt := range tests {
		t.Run(tt.mod.Name(), func(t *testing.T) {
			got, err := Decode(tt.mod)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode_Unsupported(t *testing.T) {
	for _, m := range []Modifier{
		Invalid,
		Make(VendorIntel, 18),
		BroadcomVC4TTiled,
		NVIDIA16BX2Block(2),
		Make(VendorAMD, 1),
	} {
		if _, err := Decode(m); !errors.Is(err, ErrUnsupportedModifier) {
			t.Errorf("Decode(%v) error = %v, want ErrUnsupportedModifier", m, err)
		}
	}

	if _, err := Encode(Descriptor{tiling.X, CompressionRC, PlatformGen12}); !errors.Is(err, ErrUnsupportedModifier) {
		t.Errorf("Encode(x rc) error = %v, want ErrUnsupportedModifier", err)
	}
}

func TestTiling(t *testing.T) {
	for _, mode := range []tiling.Mode{tiling.Linear, tiling.X, tiling.Y, tiling.Yf, tiling.Tile4} {
		m, err := FromTiling(mode)
		if err != nil {
			t.Fatalf("FromTiling(%v) error = %v", mode, err)
		}
		got, err := m.Tiling()
		if err != nil {
			t.Fatalf("Tiling() error = %v", err)
		}
		if got != mode {
			t.Errorf("FromTiling(%v).Tiling() = %v", mode, got)
		}
	}

	if got, _ := Intel4DG2MCCCS.Tiling(); got != tiling.Tile4 {
		t.Errorf("4_DG2_MC_CCS tiling = %v, want 4", got)
	}
	if _, err := BroadcomSAND64.Tiling(); !errors.Is(err, ErrUnsupportedModifier) {
		t.Errorf("SAND64 tiling error = %v", err)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		mod                         Modifier
		ccs, gen12, media, cc, flat bool
	}{
		{Linear, false, false, false, false, false},
		{IntelY, false, false, false, false, false},
		{IntelYCCS, true, false, false, false, false},
		{IntelYfCCS, true, false, false, false, false},
		{IntelYGen12RCCCS, true, true, false, false, false},
		{IntelYGen12MCCCS, true, true, true, false, false},
		{IntelYGen12RCCCSCC, true, true, false, true, false},
		{Intel4DG2RCCCSCC, true, true, false, true, false},
		{Intel4MTLMCCCS, true, true, true, false, false},
		{Intel4LNLCCS, false, false, false, false, true},
		{Intel4BMGCCS, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mod.String(), func(t *testing.T) {
			if got := IsCCS(tt.mod); got != tt.ccs {
				t.Errorf("IsCCS() = %v, want %v", got, tt.ccs)
			}
			if got := IsGen12CCS(tt.mod); got != tt.gen12 {
				t.Errorf("IsGen12CCS() = %v, want %v", got, tt.gen12)
			}
			if got := IsMediaCCS(tt.mod); got != tt.media {
				t.Errorf("IsMediaCCS() = %v, want %v", got, tt.media)
			}
			if got := HasClearColor(tt.mod); got != tt.cc {
				t.Errorf("HasClearColor() = %v, want %v", got, tt.cc)
			}
			if got := IsFlatCCS(tt.mod); got != tt.flat {
				t.Errorf("IsFlatCCS() = %v, want %v", got, tt.flat)
			}
		})
	}
}

func TestBroadcom(t *testing.T) {
	m := BroadcomSAND(BroadcomSAND128, 96)
	if got := BroadcomParam(m); got != 96 {
		t.Errorf("BroadcomParam() = %d, want 96", got)
	}
	if got := BroadcomBase(m); got != BroadcomSAND128 {
		t.Errorf("BroadcomBase() = %v, want SAND128", got)
	}
	if got := m.String(); got != "DRM_FORMAT_MOD_BROADCOM_SAND128_COL_HEIGHT(96)" {
		t.Errorf("String() = %q", got)
	}
	if m.Vendor() != VendorBroadcom {
		t.Errorf("Vendor() = %v", m.Vendor())
	}
}

func TestNVIDIA(t *testing.T) {
	legacy := NVIDIA16BX2Block(3)
	if !IsNVIDIABlockLinear(legacy) {
		t.Fatal("16BX2 block not recognised as block linear")
	}
	canon := CanonicalizeNVIDIA(legacy)
	if want := NVIDIABlockLinear2D(0, 0, 0, 0xfe, 3); canon != want {
		t.Errorf("CanonicalizeNVIDIA() = %#016x, want %#016x", uint64(canon), uint64(want))
	}
	if again := CanonicalizeNVIDIA(canon); again != canon {
		t.Errorf("CanonicalizeNVIDIA is not idempotent")
	}

	kinded := NVIDIABlockLinear2D(0, 1, 2, 0x06, 4)
	if got := CanonicalizeNVIDIA(kinded); got != kinded {
		t.Errorf("kind-aware modifier changed by canonicalization")
	}
	if got := NVIDIABlockHeight(kinded); got != 128 {
		t.Errorf("NVIDIABlockHeight() = %d, want 128", got)
	}
	if got := NVIDIABlockHeight(legacy); got != 64 {
		t.Errorf("NVIDIABlockHeight() = %d, want 64", got)
	}
	if got := kinded.String(); got != "DRM_FORMAT_MOD_NVIDIA_BLOCK_LINEAR_2D(0, 1, 2, 0x6, 4)" {
		t.Errorf("String() = %q", got)
	}
	if IsNVIDIABlockLinear(Make(VendorNVIDIA, 1)) {
		t.Error("non block-linear NVIDIA modifier recognised")
	}
}

func TestIsAMD(t *testing.T) {
	if !IsAMD(Make(VendorAMD, 0x1234)) {
		t.Error("AMD modifier not detected")
	}
	if IsAMD(IntelX) || IsAMD(Linear) {
		t.Error("non-AMD modifier detected as AMD")
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		mod   Modifier
		name  string
		macro string
	}{
		{Linear, "linear", "DRM_FORMAT_MOD_LINEAR"},
		{IntelX, "x", "I915_FORMAT_MOD_X_TILED"},
		{IntelYGen12RCCCS, "y-rc-ccs", "I915_FORMAT_MOD_Y_TILED_GEN12_RC_CCS"},
		{Intel4MTLMCCCS, "4-mc-ccs", "I915_FORMAT_MOD_4_TILED_MTL_MC_CCS"},
		{Intel4BMGCCS, "4-rc-ccs", "I915_FORMAT_MOD_4_TILED_BMG_CCS"},
		{Invalid, "unknown", "DRM_FORMAT_MOD_INVALID"},
		{Make(VendorAMD, 0x10), "unknown", "amd:0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.macro, func(t *testing.T) {
			if got := tt.mod.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.mod.String(); got != tt.macro {
				t.Errorf("String() = %q, want %q", got, tt.macro)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Modifier
		wantErr bool
	}{
		{"I915_FORMAT_MOD_Y_TILED_CCS", IntelYCCS, false},
		{"I915_FORMAT_MOD_4_TILED_LNL_CCS", Intel4LNLCCS, false},
		{"y-mc-ccs", IntelYGen12MCCCS, false},
		{"x", IntelX, false},
		{"linear", Linear, false},
		{"t-tiled", BroadcomVC4TTiled, false},
		{"0x0100000000000002", IntelY, false},
		{"4-rc-ccs", Invalid, true},
		{"4-mc-ccs", Invalid, true},
		{"z", Invalid, true},
		{"", Invalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedModifier) {
					t.Errorf("Parse() error = %v, want ErrUnsupportedModifier", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_RoundTripsMacroNames(t *testing.T) {
	for _, m := range Modifiers() {
		got, err := Parse(m.String())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestParseVendor(t *testing.T) {
	for v := VendorNone; v <= VendorARM; v++ {
		got, err := ParseVendor(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVendor(%q) = %v, %v, want %v", v.String(), got, err, v)
		}
	}
	if _, err := ParseVendor("matrox"); err == nil {
		t.Error("ParseVendor(matrox) succeeded")
	}

	var v Vendor
	if err := v.UnmarshalText([]byte("broadcom")); err != nil || v != VendorBroadcom {
		t.Errorf("UnmarshalText(broadcom) = %v, %v", v, err)
	}
	if b, _ := VendorAMD.MarshalText(); string(b) != "amd" {
		t.Errorf("MarshalText() = %q, want amd", b)
	}
}
