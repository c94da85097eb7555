package reference

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func randData(rnd *rand.Rand, n int) []complex128 {
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}
	return data
}

// naiveDFT is the O(n^2) definition the 1D fast path must match.
func naiveDFT(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += in[j] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func TestForward1DMatchesNaiveDFT(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, n := range []int{2, 5, 8, 12, 30} {
		want := randData(rnd, n)
		got := append([]complex128(nil), want...)

		Forward(got, []int{n})
		ref := naiveDFT(want)

		for i := range got {
			if cmplx.Abs(got[i]-ref[i]) > 1e-9*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, i, got[i], ref[i])
			}
		}
	}
}

func TestInverseUndoesForward(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	tests := [][]int{
		{16},
		{4, 6},
		{3, 5, 8},
	}

	for _, lengths := range tests {
		total := 1
		for _, n := range lengths {
			total *= n
		}

		want := randData(rnd, total)
		got := append([]complex128(nil), want...)

		Forward(got, lengths)
		Inverse(got, lengths)

		for i := range got {
			if cmplx.Abs(got[i]-want[i]) > 1e-9*float64(total) {
				t.Fatalf("lengths=%v sample %d: got %v, want %v", lengths, i, got[i], want[i])
			}
		}
	}
}

func TestForward2DSeparability(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	const nx, ny = 4, 3

	data := randData(rnd, nx*ny)

	// Transform rows then columns by hand with the naive DFT.
	want := append([]complex128(nil), data...)
	for y := 0; y < ny; y++ {
		copy(want[y*nx:(y+1)*nx], naiveDFT(want[y*nx:(y+1)*nx]))
	}
	for x := 0; x < nx; x++ {
		col := make([]complex128, ny)
		for y := 0; y < ny; y++ {
			col[y] = want[y*nx+x]
		}
		col = naiveDFT(col)
		for y := 0; y < ny; y++ {
			want[y*nx+x] = col[y]
		}
	}

	got := append([]complex128(nil), data...)
	Forward(got, []int{nx, ny})

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > 1e-9*float64(nx*ny) {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSmooth235(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{2, true},
		{8, true},
		{27, true},
		{40, true},
		{125, true},
		{360, true},
		{0, false},
		{-8, false},
		{7, false},
		{14, false},
		{121, false},
	}

	for _, tc := range tests {
		if got := Smooth235(tc.n); got != tc.want {
			t.Fatalf("Smooth235(%d): got %v, want %v", tc.n, got, tc.want)
		}
	}
}
