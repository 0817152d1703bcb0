package main

import (
	"encoding/binary"
	"math"
	"sync"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// synth procedurally generates the built-in test tone the host both
// plays back and analyzes: a slow three-note chord with a sweeping
// detuned voice and a 2 Hz tremolo, which keeps the spectrum moving so
// the visualization has something to react to.
//
// Read serves oto's playback pull as interleaved stereo float32 LE;
// every generated mono sample is also written into a ring buffer the
// analysis loop snapshots via Recent. When playback is muted, pump
// drives generation instead of Read.
type synth struct {
	mu sync.Mutex

	baseHz float64
	phases [4]float64
	lfo    float64

	ring    []float32
	ringPos int
}

// newSynth creates a synth with a mono history ring of ringSize samples.
func newSynth(baseHz float64, ringSize int) *synth {
	return &synth{
		baseHz: baseHz,
		ring:   make([]float32, ringSize),
	}
}

// chord intervals relative to the base frequency: root, fifth, octave,
// and a slowly sweeping voice handled separately.
var chordRatios = [3]float64{1.0, 1.5, 2.0}

// next produces one mono sample and advances all oscillator phases.
// Caller must hold s.mu.
func (s *synth) next() float32 {
	const twoPi = 2 * math.Pi

	s.lfo += twoPi * 2.0 / sampleRate // 2 Hz tremolo
	if s.lfo > twoPi {
		s.lfo -= twoPi
	}
	tremolo := 0.75 + 0.25*math.Sin(s.lfo)

	var v float64
	for i, ratio := range chordRatios {
		s.phases[i] += twoPi * s.baseHz * ratio / sampleRate
		if s.phases[i] > twoPi {
			s.phases[i] -= twoPi
		}
		v += math.Sin(s.phases[i]) / float64(len(chordRatios)+1)
	}

	// Sweeping voice: detune driven by the tremolo phase, one octave up.
	sweep := s.baseHz * (2.0 + 0.5*math.Sin(s.lfo*0.25))
	s.phases[3] += twoPi * sweep / sampleRate
	if s.phases[3] > twoPi {
		s.phases[3] -= twoPi
	}
	v += math.Sin(s.phases[3]) / float64(len(chordRatios)+1)

	sample := float32(v * tremolo * 0.4)

	s.ring[s.ringPos] = sample
	s.ringPos = (s.ringPos + 1) % len(s.ring)

	return sample
}

// Read fills p with interleaved stereo float32 LE samples for oto.
// Never returns an error; the tone is endless.
func (s *synth) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const frameBytes = 4 * channelCount
	frames := len(p) / frameBytes
	for i := 0; i < frames; i++ {
		bits := math.Float32bits(s.next())
		off := i * frameBytes
		binary.LittleEndian.PutUint32(p[off:], bits)
		binary.LittleEndian.PutUint32(p[off+4:], bits)
	}
	return frames * frameBytes, nil
}

// pump advances generation by n mono samples without producing output.
// Used when playback is muted so the analysis loop still sees a signal.
//
// Parameters:
//   - n: the number of samples to generate
func (s *synth) pump(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.next()
	}
}

// Recent copies the most recent len(out) mono samples into out in
// oldest-to-newest order.
//
// Parameters:
//   - out: destination buffer; must not exceed the ring size
func (s *synth) Recent(out []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(out)
	if n > len(s.ring) {
		n = len(s.ring)
	}
	start := (s.ringPos - n + len(s.ring)) % len(s.ring)
	for i := 0; i < n; i++ {
		out[i] = s.ring[(start+i)%len(s.ring)]
	}
}
