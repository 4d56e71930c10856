package filter

import (
	"fmt"
	"math"
)

// Built-in operator constructors. Coefficients are computed in float64
// and converted to the operator value type last, so integer value types
// only suit operators whose weights are integral (Laplacian, Sobel).

// MeanOperator returns the box-average operator for the given radius:
// every coefficient is 1/(window size).
func MeanOperator[V Value](radius []int) (Operator[V], error) {
	n := 1
	for _, r := range radius {
		if r < 0 {
			return Operator[V]{}, fmt.Errorf("%w: radius %v", ErrNegativeRadius, radius)
		}
		n *= 2*r + 1
	}
	w := V(1.0 / float64(n))
	coeffs := make([]V, n)
	for i := range coeffs {
		coeffs[i] = w
	}
	return NewOperator(coeffs, radius)
}

// GaussianOperator returns a sampled Gaussian of the given sigma over
// the window defined by radius, normalized so the coefficients sum to
// one.
func GaussianOperator[V Value](radius []int, sigma float64) (Operator[V], error) {
	if sigma <= 0 {
		return Operator[V]{}, fmt.Errorf("filter: gaussian sigma must be > 0, got %g", sigma)
	}
	for _, r := range radius {
		if r < 0 {
			return Operator[V]{}, fmt.Errorf("%w: radius %v", ErrNegativeRadius, radius)
		}
	}
	offsets := operatorOffsets(radius)
	weights := make([]float64, len(offsets))
	sum := 0.0
	for i, off := range offsets {
		sq := 0.0
		for _, o := range off {
			sq += float64(o * o)
		}
		weights[i] = math.Exp(-sq / (2 * sigma * sigma))
		sum += weights[i]
	}

	coeffs := make([]V, len(weights))
	for i, w := range weights {
		coeffs[i] = V(w / sum)
	}
	return NewOperator(coeffs, radius)
}

// LaplacianOperator returns the discrete Laplacian for dim axes:
// radius one per axis, -2*dim at the center, one on each axis
// neighbor, zero elsewhere.
func LaplacianOperator[V Value](dim int) (Operator[V], error) {
	if dim <= 0 {
		return Operator[V]{}, fmt.Errorf("filter: laplacian dimension must be > 0, got %d", dim)
	}
	radius := make([]int, dim)
	for d := range radius {
		radius[d] = 1
	}

	offsets := operatorOffsets(radius)
	coeffs := make([]V, len(offsets))
	for i, off := range offsets {
		nonZero, span := 0, 0
		for _, o := range off {
			if o != 0 {
				nonZero++
				span = o
			}
		}
		switch {
		case nonZero == 0:
			coeffs[i] = V(-2 * dim)
		case nonZero == 1 && (span == 1 || span == -1):
			coeffs[i] = 1
		}
	}
	return NewOperator(coeffs, radius)
}

// SobelOperator returns the 2-D Sobel edge operator differentiating
// along the given axis (0 or 1): a central difference along the
// derivative axis combined with 1-2-1 smoothing along the other.
func SobelOperator[V Value](axis int) (Operator[V], error) {
	if axis != 0 && axis != 1 {
		return Operator[V]{}, fmt.Errorf("filter: sobel axis must be 0 or 1, got %d", axis)
	}
	deriv := [3]float64{-1, 0, 1}
	smooth := [3]float64{1, 2, 1}

	radius := []int{1, 1}
	coeffs := make([]V, 9)
	for i, off := range operatorOffsets(radius) {
		coeffs[i] = V(deriv[off[axis]+1] * smooth[off[1-axis]+1])
	}
	return NewOperator(coeffs, radius)
}

// DerivativeOperator returns the first-order central-difference
// operator along the given axis of a dim-dimensional grid: radius one
// on the derivative axis, zero elsewhere, coefficients -1/2, 0, +1/2.
func DerivativeOperator[V Value](dim, axis int) (Operator[V], error) {
	if dim <= 0 {
		return Operator[V]{}, fmt.Errorf("filter: derivative dimension must be > 0, got %d", dim)
	}
	if axis < 0 || axis >= dim {
		return Operator[V]{}, fmt.Errorf("filter: derivative axis %d outside [0, %d)", axis, dim)
	}
	radius := make([]int, dim)
	radius[axis] = 1

	h := 0.5
	coeffs := []V{V(-h), 0, V(h)}
	return NewOperator(coeffs, radius)
}
