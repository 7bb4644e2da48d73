package fblayout

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("plane", 0)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("layout").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

// captureLog installs a debug text logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestPlan_LogsAtDebug(t *testing.T) {
	buf := captureLog(t)
	mustPlan(t, 512, 512, fourcc.XRGB8888, modifier.IntelX, skl)

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "fblayout: planned", "size=1048576", "I915_FORMAT_MOD_X_TILED"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestPlan_WarnsOnShortForcedStride(t *testing.T) {
	buf := captureLog(t)
	if _, err := Plan(512, 16, fourcc.XRGB8888, modifier.Linear, skl, WithStride(0, 1024)); err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "stride=1024") || !strings.Contains(out, "min=2048") {
		t.Errorf("missing forced stride warning:\n%s", out)
	}
}

func TestLogger_DefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLogger_ConcurrentPlans(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
				SetLogger(nil)
				return
			}
			if _, err := Plan(64, 64, fourcc.NV12, modifier.IntelY, skl); err != nil {
				t.Errorf("Plan() error = %v", err)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPlan_SilentLogger(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Plan(1920, 1080, fourcc.XRGB8888, modifier.IntelY, skl)
	}
}
