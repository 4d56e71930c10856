// Package grid provides the N-dimensional pixel grid, region geometry,
// and boundary conditions used by the neighborhood filters.
package grid

import "fmt"

// Size holds the per-axis extent of a region or grid.
type Size []int

// NumPixels returns the total number of pixels covered by the size.
func (s Size) NumPixels() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that all dimensions are positive.
func (s Size) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid size at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two sizes are identical.
func (s Size) Equal(other Size) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the size.
func (s Size) Clone() Size {
	clone := make(Size, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the size.
// stride[i] = product of all dimensions after i.
func (s Size) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
