// Package reference implements a host-side complex-to-complex transform for
// densely packed row-major arrays of 1-3 dimensions, composing a gonum FFT
// along each axis. It is the execution core of the simulated engine.
package reference

import "gonum.org/v1/gonum/dsp/fourier"

// Forward transforms data in place, unnormalized. lengths[0] is the
// fastest-varying (contiguous) dimension; len(data) must equal the product
// of lengths.
func Forward(data []complex128, lengths []int) {
	transform(data, lengths, false)
}

// Inverse transforms data in place with the engine-default 1/N scale, so
// Inverse undoes Forward.
func Inverse(data []complex128, lengths []int) {
	transform(data, lengths, true)

	scale := complex(1/float64(len(data)), 0)
	for i := range data {
		data[i] *= scale
	}
}

func transform(data []complex128, lengths []int, inverse bool) {
	stride := 1
	for _, n := range lengths {
		transformAxis(data, n, stride, inverse)
		stride *= n
	}
}

// transformAxis runs an n-point transform along the axis with the given
// stride, gathering each strided line into scratch the way the strided CPU
// plans do.
func transformAxis(data []complex128, n, stride int, inverse bool) {
	if n == 1 {
		return
	}

	fft := fourier.NewCmplxFFT(n)
	in := make([]complex128, n)
	out := make([]complex128, n)
	block := stride * n

	for base := 0; base < len(data); base += block {
		for off := 0; off < stride; off++ {
			for i := 0; i < n; i++ {
				in[i] = data[base+off+i*stride]
			}

			if inverse {
				fft.Sequence(out, in)
			} else {
				fft.Coefficients(out, in)
			}

			for i := 0; i < n; i++ {
				data[base+off+i*stride] = out[i]
			}
		}
	}
}

// Smooth235 reports whether n factors entirely into 2, 3 and 5, the size
// family the engine ABI documents.
func Smooth235(n int) bool {
	if n < 1 {
		return false
	}
	for _, f := range [...]int{2, 3, 5} {
		for n%f == 0 {
			n /= f
		}
	}
	return n == 1
}
