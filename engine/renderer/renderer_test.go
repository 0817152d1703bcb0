package renderer

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/wavescope-go/engine/wave"
)

// These cases exercise the guard paths that run before any GPU object is
// created, so they need no adapter.

func TestInitializeGuards(t *testing.T) {
	tests := []struct {
		name       string
		descriptor *wgpu.SurfaceDescriptor
		width      int
		height     int
	}{
		{name: "nil surface target", descriptor: nil, width: 800, height: 600},
		{name: "zero width", descriptor: &wgpu.SurfaceDescriptor{}, width: 0, height: 600},
		{name: "zero height", descriptor: &wgpu.SurfaceDescriptor{}, width: 800, height: 0},
		{name: "negative extent", descriptor: &wgpu.SurfaceDescriptor{}, width: -1, height: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer()
			if err := r.Initialize(tt.descriptor, tt.width, tt.height); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRenderFrameBeforeInitialize(t *testing.T) {
	r := NewRenderer()
	err := r.RenderFrame(0.0, wave.DefaultParams())
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
}

func TestResizeBeforeInitializeIsNoOp(t *testing.T) {
	r := NewRenderer()
	r.Resize(1024, 768)
	if w, h := r.Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d, want 0x0 before initialization", w, h)
	}
}
