package audio

// DefaultFFTSize is the analysis window size the host analyser is
// expected to use (2048 samples -> 1024 magnitude bins).
const DefaultFFTSize = 2048

// Data holds the most recent audio analysis frame pushed by the host:
// FFT magnitudes on a dB-like scale (nominally [-100, 0]) and raw
// time-domain samples. Both buffers are fixed-size for the life of the
// Data and are overwritten in place by the setters. Data itself is not
// goroutine-safe; the visualizer guards it with a lock shared by the
// audio-update and render paths.
type Data struct {
	frequency  []float32 // fftSize/2 magnitude bins
	timeDomain []float32 // fftSize raw samples
}

// NewData allocates zeroed analysis buffers for the given FFT size.
//
// Parameters:
//   - fftSize: the host analyser window size; values < 2 fall back to DefaultFFTSize
//
// Returns:
//   - *Data: buffers of length fftSize/2 (frequency) and fftSize (time domain)
func NewData(fftSize int) *Data {
	if fftSize < 2 {
		fftSize = DefaultFFTSize
	}
	return &Data{
		frequency:  make([]float32, fftSize/2),
		timeDomain: make([]float32, fftSize),
	}
}

// SetFrequencyData overwrites the magnitude buffer with the host's
// latest FFT frame. A shorter input only overwrites the prefix, leaving
// the tail at its previous values; a longer input is truncated. Short
// writes are tolerated by design, not an error.
//
// Parameters:
//   - samples: magnitude bins on the dB-like [-100, 0] scale
func (d *Data) SetFrequencyData(samples []float32) {
	copy(d.frequency, samples)
}

// SetTimeDomainData overwrites the time-domain buffer with the host's
// latest sample frame, with the same prefix-only short-write semantics
// as SetFrequencyData.
//
// Parameters:
//   - samples: raw time-domain samples
func (d *Data) SetTimeDomainData(samples []float32) {
	copy(d.timeDomain, samples)
}

// FrequencyBinCount returns the length of the magnitude buffer.
func (d *Data) FrequencyBinCount() int {
	return len(d.frequency)
}

// Amplitude reduces the magnitude buffer to a single energy scalar in
// [0, 1]: each bin is mapped from the dB scale to linear with
// clamp((x+100)/100, 0, 1), then averaged. An empty buffer yields
// exactly 0. Stateless: two calls on the same data return the same
// value.
//
// Returns:
//   - float32: the mean normalized energy, in [0, 1]
func (d *Data) Amplitude() float32 {
	if len(d.frequency) == 0 {
		return 0.0
	}

	var sum float32
	for _, x := range d.frequency {
		sum += normalizeDB(x)
	}

	avg := sum / float32(len(d.frequency))
	if avg > 1.0 {
		return 1.0
	}
	return avg
}

// Bands partitions the magnitude buffer into numBands contiguous
// near-equal segments and returns the mean normalized energy of each.
// The final segment absorbs any remainder bins left by integer division.
// The result always has length numBands: degenerate segments (empty
// input, or numBands greater than the bin count) report 0 instead of
// dividing by zero.
//
// Parameters:
//   - numBands: the number of segments to report
//
// Returns:
//   - []float32: per-band mean energy, length exactly numBands
func (d *Data) Bands(numBands int) []float32 {
	if numBands <= 0 {
		return []float32{}
	}

	bands := make([]float32, numBands)
	if len(d.frequency) == 0 {
		return bands
	}

	samplesPerBand := len(d.frequency) / numBands
	for i := range bands {
		start := i * samplesPerBand
		end := (i + 1) * samplesPerBand
		// The final band absorbs any remainder.
		if samplesPerBand > 0 && i == numBands-1 {
			end = len(d.frequency)
		}
		if end > len(d.frequency) {
			end = len(d.frequency)
		}
		if end <= start {
			continue
		}

		var sum float32
		for _, x := range d.frequency[start:end] {
			sum += normalizeDB(x)
		}
		bands[i] = sum / float32(end-start)
	}

	return bands
}

// normalizeDB maps a dB-scale magnitude (nominally [-100, 0]) to [0, 1].
func normalizeDB(x float32) float32 {
	n := (x + 100.0) / 100.0
	if n < 0.0 {
		return 0.0
	}
	if n > 1.0 {
		return 1.0
	}
	return n
}
