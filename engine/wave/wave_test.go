package wave

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func allModes() []Mode {
	return []Mode{ModeSineWaves, ModeCircularRipples, ModeLissajousCurves, ModePlasmaField, ModeWaveSurface}
}

func TestModeFromUint32(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  Mode
	}{
		{name: "sine waves", value: 0, want: ModeSineWaves},
		{name: "circular ripples", value: 1, want: ModeCircularRipples},
		{name: "lissajous curves", value: 2, want: ModeLissajousCurves},
		{name: "plasma field", value: 3, want: ModePlasmaField},
		{name: "wave surface", value: 4, want: ModeWaveSurface},
		{name: "out of range falls back", value: 5, want: ModeSineWaves},
		{name: "large value falls back", value: 4000000000, want: ModeSineWaves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeFromUint32(tt.value); got != tt.want {
				t.Errorf("ModeFromUint32(%d) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParamsSetters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(p *Params)
		check func(p Params) (float32, float32)
	}{
		{
			name:  "amplitude clamps low",
			apply: func(p *Params) { p.SetAmplitude(-5.0) },
			check: func(p Params) (float32, float32) { return p.Amplitude, 0.0 },
		},
		{
			name:  "amplitude clamps high",
			apply: func(p *Params) { p.SetAmplitude(99.0) },
			check: func(p Params) (float32, float32) { return p.Amplitude, 2.0 },
		},
		{
			name:  "amplitude accepts valid",
			apply: func(p *Params) { p.SetAmplitude(1.5) },
			check: func(p Params) (float32, float32) { return p.Amplitude, 1.5 },
		},
		{
			name:  "frequency clamps low",
			apply: func(p *Params) { p.SetFrequency(0.0) },
			check: func(p Params) (float32, float32) { return p.Frequency, 0.1 },
		},
		{
			name:  "frequency clamps high",
			apply: func(p *Params) { p.SetFrequency(50.0) },
			check: func(p Params) (float32, float32) { return p.Frequency, 20.0 },
		},
		{
			name:  "speed clamps low",
			apply: func(p *Params) { p.SetSpeed(-1.0) },
			check: func(p Params) (float32, float32) { return p.Speed, 0.1 },
		},
		{
			name:  "speed clamps high",
			apply: func(p *Params) { p.SetSpeed(10.0) },
			check: func(p Params) (float32, float32) { return p.Speed, 5.0 },
		},
		{
			name:  "hue wraps above 360",
			apply: func(p *Params) { p.SetHue(370.0) },
			check: func(p Params) (float32, float32) { return p.Hue, 10.0 },
		},
		{
			name:  "hue wraps negative upward",
			apply: func(p *Params) { p.SetHue(-10.0) },
			check: func(p Params) (float32, float32) { return p.Hue, 350.0 },
		},
		{
			name:  "nan amplitude stores lower bound",
			apply: func(p *Params) { p.SetAmplitude(float32(math.NaN())) },
			check: func(p Params) (float32, float32) { return p.Amplitude, 0.0 },
		},
		{
			name:  "nan hue stores zero",
			apply: func(p *Params) { p.SetHue(float32(math.NaN())) },
			check: func(p Params) (float32, float32) { return p.Hue, 0.0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.apply(&p)
			got, want := tt.check(p)
			if diff := math.Abs(float64(got - want)); diff > epsilon {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Amplitude != 1.0 || p.Frequency != 3.0 || p.Speed != 1.0 || p.Hue != 180.0 || p.Mode != ModeSineWaves {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestDisplacementZeroAmplitude(t *testing.T) {
	for _, mode := range allModes() {
		t.Run(mode.String(), func(t *testing.T) {
			p := DefaultParams()
			p.Mode = mode
			p.SetAmplitude(0.0)
			for _, pt := range [][2]float32{{0, 0}, {1.3, -0.7}, {-2, 2}} {
				if got := Displacement(pt[0], pt[1], 5.0, p); got != 0.0 {
					t.Errorf("Displacement(%v, %v) = %v, want 0 at zero amplitude", pt[0], pt[1], got)
				}
			}
		})
	}
}

func TestDisplacementFinite(t *testing.T) {
	coords := []float32{-2.0, -0.5, 0.0, 0.5, 2.0}
	times := []float32{0.0, 1.0, 100.0}

	for _, mode := range allModes() {
		t.Run(mode.String(), func(t *testing.T) {
			p := DefaultParams()
			p.Mode = mode
			p.SetAmplitude(2.0)
			p.SetFrequency(20.0)
			p.SetSpeed(5.0)
			for _, x := range coords {
				for _, y := range coords {
					for _, tm := range times {
						d := Displacement(x, y, tm, p)
						if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
							t.Fatalf("Displacement(%v, %v, %v) = %v, not finite", x, y, tm, d)
						}
					}
				}
			}
		})
	}
}

func TestDisplacementDeterministic(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModePlasmaField
	a := Displacement(0.7, -1.2, 3.5, p)
	b := Displacement(0.7, -1.2, 3.5, p)
	if a != b {
		t.Errorf("same inputs produced %v and %v", a, b)
	}
}

func TestDisplacementFormulas(t *testing.T) {
	t.Run("sine waves at origin and time zero is zero", func(t *testing.T) {
		p := DefaultParams()
		if got := Displacement(0, 0, 0, p); got != 0 {
			t.Errorf("got %v, want 0", got)
		}
	})

	t.Run("circular ripples ring value", func(t *testing.T) {
		p := DefaultParams()
		p.Mode = ModeCircularRipples
		p.SetFrequency(2.0)
		// r = 1 at (1, 0): sin(r*f) * exp(-r*0.5) at time 0.
		want := float32(math.Sin(2.0) * math.Exp(-0.5))
		got := Displacement(1, 0, 0, p)
		if diff := math.Abs(float64(got - want)); diff > epsilon {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("lissajous is product of axis oscillations", func(t *testing.T) {
		p := DefaultParams()
		p.Mode = ModeLissajousCurves
		p.SetFrequency(1.0)
		p.SetAmplitude(2.0)
		want := float32(math.Sin(0.5*3.0) * math.Sin(0.25*2.0) * 2.0)
		got := Displacement(0.5, 0.25, 0, p)
		if diff := math.Abs(float64(got - want)); diff > epsilon {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("wave surface at origin and time zero", func(t *testing.T) {
		p := DefaultParams()
		p.Mode = ModeWaveSurface
		// w1 = sin(sin(0) + cos(0) + 0) = sin(1), w2 = 0.
		want := float32(math.Sin(1.0))
		got := Displacement(0, 0, 0, p)
		if diff := math.Abs(float64(got - want)); diff > epsilon {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("speed scales time", func(t *testing.T) {
		slow := DefaultParams()
		slow.SetSpeed(1.0)
		fast := DefaultParams()
		fast.SetSpeed(2.0)
		// Doubling speed at time t matches unit speed at time 2t.
		a := Displacement(0.3, 0.9, 2.0, fast)
		b := Displacement(0.3, 0.9, 4.0, slow)
		if diff := math.Abs(float64(a - b)); diff > epsilon {
			t.Errorf("speed 2 at t=2 gave %v, speed 1 at t=4 gave %v", a, b)
		}
	})

	t.Run("amplitude scales linearly", func(t *testing.T) {
		half := DefaultParams()
		half.SetAmplitude(0.5)
		full := DefaultParams()
		full.SetAmplitude(1.0)
		a := Displacement(1.1, -0.4, 3.0, full)
		b := Displacement(1.1, -0.4, 3.0, half)
		if diff := math.Abs(float64(a - 2*b)); diff > epsilon {
			t.Errorf("full amplitude %v is not twice half amplitude %v", a, b)
		}
	})
}

func TestModeString(t *testing.T) {
	if got := ModeSineWaves.String(); got != "SineWaves" {
		t.Errorf("got %q, want SineWaves", got)
	}
	if got := Mode(99).String(); got != "Unknown" {
		t.Errorf("got %q, want Unknown", got)
	}
}
