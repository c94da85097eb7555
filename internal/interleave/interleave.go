// Package interleave converts between host complex slices and the
// interleaved single-precision device byte layout: each sample is a
// little-endian float32 real component followed by a float32 imaginary
// component.
package interleave

import (
	"encoding/binary"
	"math"
)

// BytesPerSample is the device footprint of one interleaved complex64 sample.
const BytesPerSample = 8

// ByteLen returns the device footprint of n samples.
func ByteLen(n int) int {
	return n * BytesPerSample
}

// PutComplex64 encodes src into dst, which must hold ByteLen(len(src)) bytes.
func PutComplex64(dst []byte, src []complex64) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*8:], math.Float32bits(real(v)))
		binary.LittleEndian.PutUint32(dst[i*8+4:], math.Float32bits(imag(v)))
	}
}

// GetComplex64 decodes ByteLen(len(dst)) bytes from src into dst.
func GetComplex64(dst []complex64, src []byte) {
	for i := range dst {
		re := math.Float32frombits(binary.LittleEndian.Uint32(src[i*8:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(src[i*8+4:]))
		dst[i] = complex(re, im)
	}
}

// GetComplex128 decodes device samples into a complex128 working buffer.
func GetComplex128(dst []complex128, src []byte) {
	for i := range dst {
		re := math.Float32frombits(binary.LittleEndian.Uint32(src[i*8:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(src[i*8+4:]))
		dst[i] = complex(float64(re), float64(im))
	}
}

// PutComplex128 encodes a complex128 working buffer back to device samples,
// rounding to single precision.
func PutComplex128(dst []byte, src []complex128) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*8:], math.Float32bits(float32(real(v))))
		binary.LittleEndian.PutUint32(dst[i*8+4:], math.Float32bits(float32(imag(v))))
	}
}
