package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/wavescope-go/engine/wave"
)

// waveShaderSource is the WGSL program for the wave field pipeline.
// Its Uniforms struct must match GPUUniforms byte for byte.
//
//go:embed assets/wave.wgsl
var waveShaderSource string

// GPUVertex is the GPU-aligned representation of a fullscreen quad
// vertex. Matches the WGSL VertexInput struct layout exactly.
// Size: 20 bytes (vec3 position + vec2 uv, tightly packed).
type GPUVertex struct {
	Position [3]float32 // offset  0: clip-space position (12 bytes)
	UV       [2]float32 // offset 12: texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// GPUUniforms is the per-frame uniform record mirrored into the single
// GPU-resident uniform buffer. Matches the WGSL Uniforms struct layout
// exactly: the vec2 resolution sits at offset 16 (8-byte aligned) with
// no padding needed. Size: 32 bytes.
type GPUUniforms struct {
	Time       float32    // offset  0: elapsed seconds
	Amplitude  float32    // offset  4: audio-modulated wave height
	Frequency  float32    // offset  8: spatial frequency
	Speed      float32    // offset 12: temporal rate multiplier
	Resolution [2]float32 // offset 16: surface size in pixels
	Hue        float32    // offset 24: base color hue in degrees
	Mode       uint32     // offset 28: wave mode discriminant
}

// NewGPUUniforms builds the uniform record for one frame from the
// elapsed time, the live surface size, and the render-only parameter
// copy. Pure; the caller owns writing the result to the GPU.
//
// Parameters:
//   - time: elapsed seconds since visualization start
//   - width: current surface width in pixels
//   - height: current surface height in pixels
//   - params: the audio-modulated wave parameters for this frame
//
// Returns:
//   - GPUUniforms: the populated uniform record
func NewGPUUniforms(time float32, width, height int, params wave.Params) GPUUniforms {
	return GPUUniforms{
		Time:       time,
		Amplitude:  params.Amplitude,
		Frequency:  params.Frequency,
		Speed:      params.Speed,
		Resolution: [2]float32{float32(width), float32(height)},
		Hue:        params.Hue,
		Mode:       uint32(params.Mode),
	}
}

// DefaultGPUUniforms returns the uniform record uploaded at initialize
// time, before the first frame has been rendered.
//
// Parameters:
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//
// Returns:
//   - GPUUniforms: defaults matching wave.DefaultParams at time 0
func DefaultGPUUniforms(width, height int) GPUUniforms {
	return NewGPUUniforms(0, width, height, wave.DefaultParams())
}

// Size returns the size of the GPUUniforms struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUniforms struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUUniforms) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Amplitude))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Frequency))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Speed))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Resolution[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Resolution[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Hue))
	binary.LittleEndian.PutUint32(buf[28:32], g.Mode)
	return buf
}

// quadVertices is the static fullscreen quad geometry. Created once at
// initialize time and immutable for the process lifetime.
var quadVertices = []GPUVertex{
	{Position: [3]float32{-1.0, -1.0, 0.0}, UV: [2]float32{0.0, 1.0}},
	{Position: [3]float32{1.0, -1.0, 0.0}, UV: [2]float32{1.0, 1.0}},
	{Position: [3]float32{1.0, 1.0, 0.0}, UV: [2]float32{1.0, 0.0}},
	{Position: [3]float32{-1.0, 1.0, 0.0}, UV: [2]float32{0.0, 0.0}},
}

// quadIndices draws the quad as two CCW triangles.
var quadIndices = []uint16{0, 1, 2, 2, 3, 0}
