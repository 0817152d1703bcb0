package wave

import (
	"math"

	"github.com/Carmen-Shannon/wavescope-go/common"
)

// Mode selects one of the procedural wave displacement algorithms.
type Mode uint32

const (
	// ModeSineWaves layers three travelling sine waves.
	ModeSineWaves Mode = iota
	// ModeCircularRipples emits decaying rings from the field center.
	ModeCircularRipples
	// ModeLissajousCurves multiplies two orthogonal oscillations.
	ModeLissajousCurves
	// ModePlasmaField averages four interfering sine terms.
	ModePlasmaField
	// ModeWaveSurface nests oscillations for a rolling surface look.
	ModeWaveSurface
)

// ModeFromUint32 decodes a raw mode value received across the host
// boundary. Out-of-range values fall back to ModeSineWaves rather than
// failing; the host UI treats unknown modes as the default.
//
// Parameters:
//   - value: the raw mode value
//
// Returns:
//   - Mode: the decoded mode, or ModeSineWaves if value is out of range
func ModeFromUint32(value uint32) Mode {
	switch Mode(value) {
	case ModeSineWaves, ModeCircularRipples, ModeLissajousCurves, ModePlasmaField, ModeWaveSurface:
		return Mode(value)
	default:
		return ModeSineWaves
	}
}

// String returns the human-readable mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeSineWaves:
		return "SineWaves"
	case ModeCircularRipples:
		return "CircularRipples"
	case ModeLissajousCurves:
		return "LissajousCurves"
	case ModePlasmaField:
		return "PlasmaField"
	case ModeWaveSurface:
		return "WaveSurface"
	default:
		return "Unknown"
	}
}

// Params holds the tunable wave field parameters. All numeric fields are
// kept inside their valid ranges by the setters; mutate through them
// rather than assigning fields directly when the value comes from the
// host boundary.
type Params struct {
	// Amplitude is the wave height multiplier, in [0, 2].
	Amplitude float32
	// Frequency is the spatial frequency, in [0.1, 20].
	Frequency float32
	// Speed is the temporal rate multiplier, in [0.1, 5].
	Speed float32
	// Hue is the base color hue in degrees, in [0, 360).
	Hue float32
	// Mode selects the displacement algorithm.
	Mode Mode
}

// DefaultParams returns the startup parameter set.
//
// Returns:
//   - Params: amplitude 1, frequency 3, speed 1, hue 180, ModeSineWaves
func DefaultParams() Params {
	return Params{
		Amplitude: 1.0,
		Frequency: 3.0,
		Speed:     1.0,
		Hue:       180.0,
		Mode:      ModeSineWaves,
	}
}

// SetAmplitude clamps v into [0, 2] and stores it. NaN stores 0.
func (p *Params) SetAmplitude(v float32) {
	p.Amplitude = common.Clamp(v, 0.0, 2.0)
}

// SetFrequency clamps v into [0.1, 20] and stores it. NaN stores 0.1.
func (p *Params) SetFrequency(v float32) {
	p.Frequency = common.Clamp(v, 0.1, 20.0)
}

// SetSpeed clamps v into [0.1, 5] and stores it. NaN stores 0.1.
func (p *Params) SetSpeed(v float32) {
	p.Speed = common.Clamp(v, 0.1, 5.0)
}

// SetHue wraps v into [0, 360) with true modulo, so -10 wraps to 350.
// Non-finite input stores 0.
func (p *Params) SetHue(v float32) {
	p.Hue = common.WrapDegrees(v)
}

// SetMode decodes a raw mode value with fallback to ModeSineWaves.
func (p *Params) SetMode(value uint32) {
	p.Mode = ModeFromUint32(value)
}

// Displacement evaluates the scalar wave field at (x, y) for the given
// elapsed time and parameters. Pure and deterministic: the same inputs
// always produce the same output, with no retained state. The CPU
// evaluation mirrors the fragment shader term for term so host-side
// consumers (tests, future mesh generation) agree with what the GPU
// draws.
//
// The result is amplitude-scaled at the outermost step of every mode, so
// amplitude 0 always yields 0. Superposed modes (SineWaves, WaveSurface)
// can reach ~1.8x amplitude before scaling; the remaining modes stay
// within 1x.
//
// Parameters:
//   - x: horizontal field coordinate
//   - y: vertical field coordinate
//   - time: elapsed time in seconds
//   - p: the wave parameters
//
// Returns:
//   - float32: the scalar displacement at (x, y)
func Displacement(x, y, time float32, p Params) float32 {
	t := float64(time) * float64(p.Speed)
	fx := float64(x)
	fy := float64(y)
	f := float64(p.Frequency)
	a := float64(p.Amplitude)

	var d float64
	switch p.Mode {
	case ModeCircularRipples:
		r := math.Sqrt(fx*fx + fy*fy)
		d = math.Sin(r*f-t*2.0) * a * math.Exp(-r*0.5)
	case ModeLissajousCurves:
		lx := math.Sin(fx*f*3.0 + t)
		ly := math.Sin(fy*f*2.0 + t*1.5)
		d = lx * ly * a
	case ModePlasmaField:
		cx := math.Sin(fx*f + t)
		cy := math.Sin(fy*f + t)
		c1 := math.Sin(fx*f + fy*f + t)
		r := math.Sqrt(fx*fx + fy*fy)
		c2 := math.Sin(r*f*0.5 + t)
		d = (cx + cy + c1 + c2) * 0.25 * a
	case ModeWaveSurface:
		w1 := math.Sin(math.Sin(fx*f) + math.Cos(fy*f) + t)
		w2 := math.Sin((fx-fy)*f*0.5+t*0.7) * 0.5
		d = (w1 + w2) * a
	default: // ModeSineWaves
		w1 := math.Sin(fx*f + t)
		w2 := math.Sin(fy*f*0.7+t*1.3) * 0.5
		w3 := math.Sin((fx+fy)*f*0.5+t*0.7) * 0.3
		d = (w1 + w2 + w3) * a
	}

	return float32(d)
}
