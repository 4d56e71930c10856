package filter

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/lucasalg/ITK/internal/cpu"
)

// vecKernelMin is the smallest window size for which the blocked
// vecmath inner product beats the scalar loop. Gathering the window
// into a scratch buffer costs one extra pass, so short kernels stay on
// the scalar path.
const vecKernelMin = 16

// blockedPath returns the float64 views needed for the vecmath inner
// product, or ok=false when the pixel or value type is not float64, the
// kernel is too short, or the CPU has no vector extensions.
func blockedPath[In any, V Value](data []In, coeffs []V) (data64, coeffs64 []float64, ok bool) {
	if len(coeffs) < vecKernelMin || !cpu.DetectFeatures().HasSIMD() {
		return nil, nil, false
	}
	d64, ok := any(data).([]float64)
	if !ok {
		return nil, nil, false
	}
	c64, ok := any(coeffs).([]float64)
	if !ok {
		return nil, nil, false
	}
	return d64, c64, true
}

// blockedInnerProduct gathers the interior window at base into win,
// multiplies it against the coefficients in one block, and sums.
func blockedInnerProduct(data64, coeffs64 []float64, flat []int, base int, win, prod []float64) float64 {
	for k, d := range flat {
		win[k] = data64[base+d]
	}
	vecmath.MulBlock(prod, win, coeffs64)

	var acc float64
	for _, v := range prod {
		acc += v
	}
	return acc
}
