package audio

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func fill(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestNewData(t *testing.T) {
	tests := []struct {
		name     string
		fftSize  int
		wantBins int
		wantTime int
	}{
		{name: "explicit size", fftSize: 512, wantBins: 256, wantTime: 512},
		{name: "default size", fftSize: DefaultFFTSize, wantBins: 1024, wantTime: 2048},
		{name: "zero falls back to default", fftSize: 0, wantBins: 1024, wantTime: 2048},
		{name: "one falls back to default", fftSize: 1, wantBins: 1024, wantTime: 2048},
		{name: "negative falls back to default", fftSize: -64, wantBins: 1024, wantTime: 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewData(tt.fftSize)
			if got := d.FrequencyBinCount(); got != tt.wantBins {
				t.Errorf("FrequencyBinCount() = %d, want %d", got, tt.wantBins)
			}
			if got := len(d.timeDomain); got != tt.wantTime {
				t.Errorf("time domain length = %d, want %d", got, tt.wantTime)
			}
		})
	}
}

func TestAmplitude(t *testing.T) {
	tests := []struct {
		name    string
		fftSize int
		freq    []float32
		want    float32
	}{
		{name: "full scale zero dB", fftSize: 8, freq: fill(4, 0.0), want: 1.0},
		{name: "silence at noise floor", fftSize: 8, freq: fill(4, -100.0), want: 0.0},
		{name: "below floor clamps to zero", fftSize: 8, freq: fill(4, -200.0), want: 0.0},
		{name: "above zero dB clamps to one", fftSize: 8, freq: fill(4, 50.0), want: 1.0},
		{name: "midpoint", fftSize: 8, freq: fill(4, -50.0), want: 0.5},
		{name: "mixed bins average", fftSize: 8, freq: []float32{0.0, -100.0, 0.0, -100.0}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewData(tt.fftSize)
			d.SetFrequencyData(tt.freq)
			got := d.Amplitude()
			if diff := math.Abs(float64(got - tt.want)); diff > epsilon {
				t.Errorf("Amplitude() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Amplitude() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestAmplitudeStateless(t *testing.T) {
	d := NewData(16)
	d.SetFrequencyData(fill(8, -30.0))
	a := d.Amplitude()
	b := d.Amplitude()
	if a != b {
		t.Errorf("repeated calls returned %v then %v", a, b)
	}
}

func TestSetFrequencyDataShortWrite(t *testing.T) {
	d := NewData(8)
	d.SetFrequencyData(fill(4, -20.0))

	// Short update only overwrites the prefix.
	d.SetFrequencyData([]float32{-80.0, -80.0})
	if d.frequency[0] != -80.0 || d.frequency[1] != -80.0 {
		t.Errorf("prefix not overwritten: %v", d.frequency)
	}
	if d.frequency[2] != -20.0 || d.frequency[3] != -20.0 {
		t.Errorf("tail not preserved: %v", d.frequency)
	}

	// Oversized update is truncated without growing the buffer.
	d.SetFrequencyData(fill(100, -10.0))
	if got := d.FrequencyBinCount(); got != 4 {
		t.Errorf("buffer grew to %d bins", got)
	}
}

func TestSetTimeDomainDataShortWrite(t *testing.T) {
	d := NewData(8)
	d.SetTimeDomainData(fill(8, 0.25))
	d.SetTimeDomainData([]float32{0.5})
	if d.timeDomain[0] != 0.5 {
		t.Errorf("prefix not overwritten: %v", d.timeDomain[0])
	}
	if d.timeDomain[1] != 0.25 {
		t.Errorf("tail not preserved: %v", d.timeDomain[1])
	}
}

func TestBands(t *testing.T) {
	t.Run("zero bands returns empty", func(t *testing.T) {
		d := NewData(8)
		if got := d.Bands(0); len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("negative bands returns empty", func(t *testing.T) {
		d := NewData(8)
		if got := d.Bands(-3); len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("result length always matches request", func(t *testing.T) {
		d := NewData(8) // 4 bins
		for _, n := range []int{1, 2, 4, 5, 100} {
			if got := d.Bands(n); len(got) != n {
				t.Errorf("Bands(%d) length = %d", n, len(got))
			}
		}
	})

	t.Run("more bands than bins reports zeros without panicking", func(t *testing.T) {
		d := NewData(8) // 4 bins
		d.SetFrequencyData(fill(4, 0.0))
		got := d.Bands(10)
		if len(got) != 10 {
			t.Fatalf("length = %d, want 10", len(got))
		}
		for i, v := range got {
			if v != 0.0 {
				t.Errorf("band %d = %v, want 0 for degenerate segment", i, v)
			}
		}
	})

	t.Run("final band absorbs remainder bins", func(t *testing.T) {
		d := NewData(20) // 10 bins, Bands(3) -> segments of 3, 3, 4
		freq := fill(10, -100.0)
		freq[9] = 0.0
		d.SetFrequencyData(freq)
		got := d.Bands(3)
		if diff := math.Abs(float64(got[2] - 0.25)); diff > epsilon {
			t.Errorf("final band = %v, want 0.25 (remainder bin included)", got[2])
		}
	})

	t.Run("band means reflect per-segment energy", func(t *testing.T) {
		d := NewData(8) // 4 bins
		d.SetFrequencyData([]float32{0.0, 0.0, -100.0, -100.0})
		got := d.Bands(2)
		if diff := math.Abs(float64(got[0] - 1.0)); diff > epsilon {
			t.Errorf("band 0 = %v, want 1", got[0])
		}
		if diff := math.Abs(float64(got[1])); diff > epsilon {
			t.Errorf("band 1 = %v, want 0", got[1])
		}
	})
}
