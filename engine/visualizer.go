package engine

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/wavescope-go/engine/audio"
	"github.com/Carmen-Shannon/wavescope-go/engine/renderer"
	"github.com/Carmen-Shannon/wavescope-go/engine/wave"
	"github.com/Carmen-Shannon/wavescope-go/engine/window"
)

// Visualizer is the entry point for the audio-reactive wave
// visualization. It owns the shared audio analysis buffers, the live
// wave parameters, the visualization start time, and the GPU renderer,
// and exposes the per-frame and host-facing operations.
//
// Concurrency model: the host drives Render one frame at a time from
// the window message loop, while UpdateAudio may arrive from a separate
// analysis goroutine. The audio buffers are the only state shared
// between the two paths and are guarded by a single lock covering both
// buffers, so a reader never observes a frequency frame from one update
// paired with a time-domain frame from another.
type Visualizer interface {
	// Initialize creates the GPU renderer for the window's surface and
	// blocks until adapter/device negotiation completes. Must be called
	// exactly once before Render.
	//
	// Parameters:
	//   - win: the host window supplying the surface target and initial size
	//
	// Returns:
	//   - error: a descriptive error if the window has no surface or GPU
	//     setup fails; the visualizer stays in its pre-render state
	Initialize(win window.Window) error

	// UpdateAudio overwrites the shared analysis buffers with the host's
	// latest FFT frame. Short inputs overwrite only a prefix. If the
	// buffers are currently locked by a concurrent render, the update is
	// dropped silently rather than blocking the audio path; the next
	// update wins.
	//
	// Parameters:
	//   - frequencyData: magnitude bins on the dB-like [-100, 0] scale
	//   - timeDomainData: raw time-domain samples
	UpdateAudio(frequencyData, timeDomainData []float32)

	// SetMode selects the wave displacement algorithm. Out-of-range
	// values fall back to the default mode.
	//
	// Parameters:
	//   - mode: the raw mode value from the host boundary
	SetMode(mode uint32)

	// SetAmplitude sets the wave height multiplier, clamped to [0, 2].
	SetAmplitude(v float32)

	// SetFrequency sets the spatial frequency, clamped to [0.1, 20].
	SetFrequency(v float32)

	// SetSpeed sets the temporal rate multiplier, clamped to [0.1, 5].
	SetSpeed(v float32)

	// SetHue sets the base color hue in degrees, wrapped into [0, 360).
	SetHue(v float32)

	// Params returns a snapshot of the current wave parameters.
	//
	// Returns:
	//   - wave.Params: the live parameter values
	Params() wave.Params

	// FrequencyBands reports the current per-band audio energy for host
	// UI use. Returns n zeros if the audio buffers are locked by a
	// concurrent update.
	//
	// Parameters:
	//   - n: the number of bands to report
	//
	// Returns:
	//   - []float32: per-band mean energy, length exactly n
	FrequencyBands(n int) []float32

	// Render draws one frame. Computes elapsed seconds from the host
	// timestamp, reads the current audio amplitude (falling back to 0 if
	// the audio lock is contended), scales a render-only copy of the
	// parameters by 0.5 + amplitude*1.5, and delegates to the renderer.
	// The live parameters are never mutated by audio reactivity.
	//
	// Before a successful Initialize this is a silent no-op. A lost
	// surface returns a recoverable error; the host should simply
	// attempt the next frame.
	//
	// Parameters:
	//   - timestampMs: monotonically increasing timestamp in milliseconds
	//
	// Returns:
	//   - error: a recoverable render error, or nil
	Render(timestampMs float64) error

	// Resize forwards a surface size change to the renderer. Zero
	// dimensions are tolerated as a transient no-op. Before Initialize
	// this does nothing.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	//
	// Returns:
	//   - error: always nil today; reserved for host API parity
	Resize(width, height int) error
}

// visualizer is the implementation of the Visualizer interface.
type visualizer struct {
	// audioMu guards both analysis buffers as a pair.
	audioMu *sync.Mutex
	audio   *audio.Data

	// paramsMu guards the live parameter record against setter calls
	// arriving concurrently with a render.
	paramsMu *sync.Mutex
	params   wave.Params

	// startTimeMs anchors elapsed-time computation. Captured from the
	// first render timestamp unless set via WithStartTime, so the
	// visualizer shares whatever clock the host renders with.
	startTimeMs  float64
	startTimeSet bool

	r           renderer.Renderer
	rendererOpts []renderer.RendererBuilderOption
	initialized bool

	fftSize int
}

var _ Visualizer = &visualizer{}

// NewVisualizer creates a Visualizer with default parameters and zeroed
// audio buffers. Call Initialize with a window before rendering.
//
// Parameters:
//   - options: functional options to configure the visualizer
//
// Returns:
//   - Visualizer: the configured visualizer (not yet initialized)
func NewVisualizer(options ...VisualizerBuilderOption) Visualizer {
	v := &visualizer{
		audioMu:  &sync.Mutex{},
		paramsMu: &sync.Mutex{},
		params:   wave.DefaultParams(),
		fftSize:  audio.DefaultFFTSize,
	}
	for _, opt := range options {
		opt(v)
	}
	v.audio = audio.NewData(v.fftSize)
	return v
}

func (v *visualizer) Initialize(win window.Window) error {
	if v.initialized {
		return errors.New("visualizer is already initialized")
	}
	if win == nil {
		return errors.New("no window to attach to")
	}

	descriptor := win.SurfaceDescriptor()
	if descriptor == nil {
		return errors.New("window has no surface target")
	}

	if v.r == nil {
		v.r = renderer.NewRenderer(v.rendererOpts...)
	}
	if err := v.r.Initialize(descriptor, win.Width(), win.Height()); err != nil {
		return err
	}

	v.initialized = true
	log.Printf("[visualizer] renderer initialized %dx%d", win.Width(), win.Height())
	return nil
}

func (v *visualizer) UpdateAudio(frequencyData, timeDomainData []float32) {
	// Drop the update rather than stall the audio path when a render
	// holds the buffers; the next analysis frame overwrites it anyway.
	if !v.audioMu.TryLock() {
		return
	}
	defer v.audioMu.Unlock()

	v.audio.SetFrequencyData(frequencyData)
	v.audio.SetTimeDomainData(timeDomainData)
}

func (v *visualizer) SetMode(mode uint32) {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	v.params.SetMode(mode)
	log.Printf("[visualizer] wave mode changed to %v", v.params.Mode)
}

func (v *visualizer) SetAmplitude(val float32) {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	v.params.SetAmplitude(val)
}

func (v *visualizer) SetFrequency(val float32) {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	v.params.SetFrequency(val)
}

func (v *visualizer) SetSpeed(val float32) {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	v.params.SetSpeed(val)
}

func (v *visualizer) SetHue(val float32) {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	v.params.SetHue(val)
}

func (v *visualizer) Params() wave.Params {
	v.paramsMu.Lock()
	defer v.paramsMu.Unlock()
	return v.params
}

func (v *visualizer) FrequencyBands(n int) []float32 {
	if !v.audioMu.TryLock() {
		return make([]float32, max(n, 0))
	}
	defer v.audioMu.Unlock()
	return v.audio.Bands(n)
}

func (v *visualizer) Render(timestampMs float64) error {
	if !v.initialized || v.r == nil {
		return nil
	}

	if !v.startTimeSet {
		v.startTimeMs = timestampMs
		v.startTimeSet = true
	}
	elapsed := (timestampMs - v.startTimeMs) / 1000.0

	// Stale read on contention: keep the frame cadence instead of
	// waiting for an in-flight audio update.
	var audioAmplitude float32
	if v.audioMu.TryLock() {
		audioAmplitude = v.audio.Amplitude()
		v.audioMu.Unlock()
	}

	v.paramsMu.Lock()
	params := v.params
	v.paramsMu.Unlock()

	// Render-only copy: silence still shows 50% of the configured
	// amplitude, full-scale audio up to 200%.
	params.Amplitude *= 0.5 + audioAmplitude*1.5

	return v.r.RenderFrame(float32(elapsed), params)
}

func (v *visualizer) Resize(width, height int) error {
	if !v.initialized || v.r == nil {
		return nil
	}
	v.r.Resize(width, height)
	return nil
}
