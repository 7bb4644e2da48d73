package fblayout

import (
	"errors"
	"testing"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestLayout_TextureCopy(t *testing.T) {
	l := mustPlan(t, 640, 480, fourcc.XRGB8888, modifier.Linear, tgl)

	got, err := l.TextureCopy(0)
	if err != nil {
		t.Fatalf("TextureCopy() error = %v", err)
	}
	want := TextureCopy{
		Offset:       0,
		BytesPerRow:  2560,
		RowsPerImage: 480,
		Size:         gputypes.Extent3D{Width: 640, Height: 480, DepthOrArrayLayers: 1},
		Format:       gputypes.TextureFormatBGRA8Unorm,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TextureCopy() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_TextureCopyErrors(t *testing.T) {
	tests := []struct {
		name    string
		l       *Layout
		plane   int
		wantErr error
	}{
		{"tiled", mustPlan(t, 640, 480, fourcc.XRGB8888, modifier.IntelX, tgl), 0, ErrNotCopyable},
		{"yuv", mustPlan(t, 640, 480, fourcc.NV12, modifier.Linear, tgl), 0, ErrNotCopyable},
		{"unaligned pitch", mustPlan(t, 10, 10, fourcc.XRGB8888, modifier.Linear, tgl), 0, ErrNotCopyable},
		{"no texture format", mustPlan(t, 640, 480, fourcc.XRGB2101010, modifier.Linear, tgl), 0, ErrNotCopyable},
		{"out of range", mustPlan(t, 640, 480, fourcc.XRGB8888, modifier.Linear, tgl), 1, ErrPlaneOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.l.TextureCopy(tt.plane); !errors.Is(err, tt.wantErr) {
				t.Errorf("TextureCopy() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlane_Extent(t *testing.T) {
	p := Plane{Width: 7, Height: 3}
	want := gputypes.Extent3D{Width: 7, Height: 3, DepthOrArrayLayers: 1}
	if got := p.Extent(); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}
}
