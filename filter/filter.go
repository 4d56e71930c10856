// Copyright 2026 The ITK-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package filter provides the public API for the neighborhood-operator
// convolution engine.
//
// A Filter sweeps a weighted operator across every pixel of a requested
// output region and writes one inner product per pixel:
//
//	op, _ := filter.GaussianOperator[float64]([]int{2, 2}, 1.5)
//
//	f := filter.New[float64, float64, float64]()
//	f.SetOperator(op)
//	err := f.Apply(input, output, output.Extent())
//
// Out-of-extent window accesses resolve through a boundary condition
// (zero-flux Neumann clamping unless overridden), and the output region
// is computed by independent workers over disjoint sub-regions.
package filter

import (
	"github.com/lucasalg/ITK/internal/filter"
	"github.com/lucasalg/ITK/internal/grid"
)

// Value is the constraint for operator coefficient types.
type Value = filter.Value

// Operator is an immutable flat sequence of weighted coefficients
// indexed by window offset.
type Operator[V Value] = filter.Operator[V]

// Filter applies a single neighborhood operator to a region of an
// input grid.
type Filter[In, Out grid.Pixel, V Value] = filter.Filter[In, Out, V]

// Errors surfaced by operator construction and filter application.
var (
	ErrNoOperator        = filter.ErrNoOperator
	ErrEmptyOperator     = filter.ErrEmptyOperator
	ErrCoefficientCount  = filter.ErrCoefficientCount
	ErrNegativeRadius    = filter.ErrNegativeRadius
	ErrDimensionMismatch = filter.ErrDimensionMismatch
	ErrRegionOutOfBounds = filter.ErrRegionOutOfBounds
	ErrEmptyInputRegion  = filter.ErrEmptyInputRegion
)

// New creates a filter with the default zero-flux Neumann boundary
// condition and parallelism sized to the CPU count.
func New[In, Out grid.Pixel, V Value]() *Filter[In, Out, V] {
	return filter.New[In, Out, V]()
}

// NewOperator builds an operator from a row-major coefficient slice
// and a per-axis radius.
func NewOperator[V Value](coeffs []V, radius []int) (Operator[V], error) {
	return filter.NewOperator(coeffs, radius)
}

// MeanOperator returns the box-average operator for the given radius.
func MeanOperator[V Value](radius []int) (Operator[V], error) {
	return filter.MeanOperator[V](radius)
}

// GaussianOperator returns a normalized sampled Gaussian operator.
func GaussianOperator[V Value](radius []int, sigma float64) (Operator[V], error) {
	return filter.GaussianOperator[V](radius, sigma)
}

// LaplacianOperator returns the discrete Laplacian for dim axes.
func LaplacianOperator[V Value](dim int) (Operator[V], error) {
	return filter.LaplacianOperator[V](dim)
}

// SobelOperator returns the 2-D Sobel edge operator differentiating
// along the given axis.
func SobelOperator[V Value](axis int) (Operator[V], error) {
	return filter.SobelOperator[V](axis)
}

// DerivativeOperator returns the first-order central-difference
// operator along the given axis.
func DerivativeOperator[V Value](dim, axis int) (Operator[V], error) {
	return filter.DerivativeOperator[V](dim, axis)
}

// InnerProduct computes the inner product of an operator with the
// window of in centered at center, resolving out-of-extent accesses
// through bc.
func InnerProduct[In grid.Pixel, V Value](op Operator[V], in *grid.Grid[In], center grid.Index, bc grid.BoundaryCondition[In]) float64 {
	return filter.InnerProduct(op, in, center, bc)
}
