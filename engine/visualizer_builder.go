package engine

import (
	"github.com/Carmen-Shannon/wavescope-go/engine/renderer"
)

// VisualizerBuilderOption is a functional option applied to a visualizer during construction via NewVisualizer.
type VisualizerBuilderOption func(*visualizer)

// WithFFTSize sets the analysis window size the host's analyser is
// configured with. The visualizer allocates fftSize/2 magnitude bins and
// fftSize time-domain samples.
//
// Parameters:
//   - fftSize: the analysis window size (values < 2 fall back to the default)
//
// Returns:
//   - VisualizerBuilderOption: a function that applies the FFT size option to a visualizer
func WithFFTSize(fftSize int) VisualizerBuilderOption {
	return func(v *visualizer) {
		v.fftSize = fftSize
	}
}

// WithStartTime anchors elapsed-time computation to an explicit host
// timestamp instead of capturing the first render timestamp.
//
// Parameters:
//   - timestampMs: the start timestamp in milliseconds on the host's render clock
//
// Returns:
//   - VisualizerBuilderOption: a function that applies the start time option to a visualizer
func WithStartTime(timestampMs float64) VisualizerBuilderOption {
	return func(v *visualizer) {
		v.startTimeMs = timestampMs
		v.startTimeSet = true
	}
}

// WithRenderer injects a pre-built Renderer instead of letting
// Initialize construct the default wgpu renderer. The injected renderer
// still receives the Initialize call with the window's surface target.
//
// Parameters:
//   - r: the renderer to use
//
// Returns:
//   - VisualizerBuilderOption: a function that applies the renderer option to a visualizer
func WithRenderer(r renderer.Renderer) VisualizerBuilderOption {
	return func(v *visualizer) {
		v.r = r
	}
}

// WithRendererOptions forwards builder options to the default renderer
// constructed during Initialize. Ignored when WithRenderer is used.
//
// Parameters:
//   - options: renderer builder options (present mode, software fallback, ...)
//
// Returns:
//   - VisualizerBuilderOption: a function that applies the renderer options to a visualizer
func WithRendererOptions(options ...renderer.RendererBuilderOption) VisualizerBuilderOption {
	return func(v *visualizer) {
		v.rendererOpts = options
	}
}
