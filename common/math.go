package common

import (
	"math"
	"unsafe"
)

// Clamp constrains v to the inclusive range [lo, hi].
// NaN is treated as the lower bound so GPU-bound parameters can never
// carry a non-finite value.
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float32: v constrained to [lo, hi], or lo if v is NaN
func Clamp(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees wraps an angle into [0, 360) using true modulo, so negative
// input wraps upward (-10 -> 350). NaN and infinities wrap to 0.
//
// Parameters:
//   - deg: the angle in degrees
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(deg float32) float32 {
	d := float64(deg)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	w := math.Mod(d, 360)
	if w < 0 {
		w += 360
	}
	return float32(w)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
