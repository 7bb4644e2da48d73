package draw

import (
	"errors"
	"image"
	"image/color"
	stddraw "image/draw"
	"testing"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
)

func TestImage_ByteOrder(t *testing.T) {
	tests := []struct {
		format fourcc.Code
		want   [4]byte
		at     color.RGBA
	}{
		{fourcc.ARGB8888, [4]byte{0x30, 0x20, 0x10, 0x80}, color.RGBA{0x10, 0x20, 0x30, 0x80}},
		{fourcc.XRGB8888, [4]byte{0x30, 0x20, 0x10, 0xff}, color.RGBA{0x10, 0x20, 0x30, 0xff}},
		{fourcc.ABGR8888, [4]byte{0x10, 0x20, 0x30, 0x80}, color.RGBA{0x10, 0x20, 0x30, 0x80}},
		{fourcc.XBGR8888, [4]byte{0x10, 0x20, 0x30, 0xff}, color.RGBA{0x10, 0x20, 0x30, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			l := mustPlan(t, 16, 16, tt.format, modifier.Linear, skl)
			buf := NewBuffer(l.Size)
			img, err := NewImage(Target{Layout: l, Mapping: buf})
			if err != nil {
				t.Fatalf("NewImage() error = %v", err)
			}

			img.Set(2, 3, color.RGBA{0x10, 0x20, 0x30, 0x80})
			off := 3*int(l.Planes[0].Stride) + 2*4
			var got [4]byte
			copy(got[:], buf.Bytes()[off:])
			if got != tt.want {
				t.Errorf("stored bytes = % x, want % x", got, tt.want)
			}
			if c := img.At(2, 3); c != tt.at {
				t.Errorf("At() = %v, want %v", c, tt.at)
			}
		})
	}
}

func TestImage_TiledDraw(t *testing.T) {
	l := mustPlan(t, 256, 64, fourcc.XRGB8888, modifier.IntelY, skl)
	buf := NewBuffer(l.Size)
	tgt := Target{Layout: l, Mapping: buf}
	img, err := NewImage(tgt)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}

	red := image.NewUniform(color.RGBA{0xff, 0, 0, 0xff})
	stddraw.Draw(img, image.Rect(16, 8, 48, 40), red, image.Point{}, stddraw.Src)

	px, err := ReadPixel(tgt, 20, 30)
	if err != nil {
		t.Fatalf("ReadPixel() error = %v", err)
	}
	if px != 0xffff0000 {
		t.Errorf("pixel = %#x, want 0xffff0000", px)
	}
	if c := img.At(0, 0); c != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("At(0, 0) = %v, want opaque black", c)
	}
}

func TestImage_OutsideBounds(t *testing.T) {
	l := mustPlan(t, 8, 8, fourcc.ARGB8888, modifier.Linear, skl)
	img, err := NewImage(Target{Layout: l, Mapping: NewBuffer(l.Size)})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	img.Set(8, 0, color.White)
	img.Set(-1, 0, color.White)
	if c := img.At(8, 0); c != (color.RGBA{}) {
		t.Errorf("At(8, 0) = %v, want zero", c)
	}
}

func TestNewImage_Errors(t *testing.T) {
	nv12 := mustPlan(t, 16, 16, fourcc.NV12, modifier.Linear, skl)
	if _, err := NewImage(Target{Layout: nv12, Mapping: NewBuffer(nv12.Size)}); !errors.Is(err, fourcc.ErrUnknownFormat) {
		t.Errorf("NewImage(NV12) error = %v, want ErrUnknownFormat", err)
	}

	l := mustPlan(t, 16, 16, fourcc.XRGB8888, modifier.Linear, skl)
	if _, err := NewImage(Target{Layout: l, Writer: NewBuffer(l.Size)}); !errors.Is(err, ErrNoPrimitive) {
		t.Errorf("NewImage(writer) error = %v, want ErrNoPrimitive", err)
	}

	ccs := mustPlan(t, 256, 64, fourcc.XRGB8888, modifier.IntelYCCS, skl)
	if _, err := NewImage(Target{Layout: ccs, Plane: 1, Mapping: NewBuffer(ccs.Size)}); !errors.Is(err, ErrUnsupportedBPP) {
		t.Errorf("NewImage(ccs plane) error = %v, want ErrUnsupportedBPP", err)
	}
}

func TestScale(t *testing.T) {
	l := mustPlan(t, 32, 32, fourcc.XRGB8888, modifier.IntelX, skl)
	img, err := NewImage(Target{Layout: l, Mapping: NewBuffer(l.Size)})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	stddraw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{0, 0xff, 0, 0xff}), image.Point{}, stddraw.Src)
	Scale(img, src)

	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}} {
		if c := img.At(p.X, p.Y); c != (color.RGBA{0, 0xff, 0, 0xff}) {
			t.Errorf("At(%v) = %v, want uniform green", p, c)
		}
	}
}
