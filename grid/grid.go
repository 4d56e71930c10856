// Copyright 2026 The ITK-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for N-dimensional pixel grids,
// region geometry, and boundary conditions.
package grid

import (
	"github.com/lucasalg/ITK/internal/grid"
)

// Type aliases for public API

// Pixel is the constraint for supported grid pixel types.
// Supported types: float32, float64, int32, int64, uint8.
type Pixel = grid.Pixel

// Index is an N-dimensional pixel coordinate.
type Index = grid.Index

// Size holds the per-axis extent of a region or grid.
type Size = grid.Size

// Region is an axis-aligned index range: start index plus per-axis
// size.
type Region = grid.Region

// Grid is an N-dimensional array of pixels covering an extent region.
type Grid[T Pixel] = grid.Grid[T]

// BoundaryCondition resolves out-of-extent window accesses to
// substitute pixel values.
type BoundaryCondition[T Pixel] = grid.BoundaryCondition[T]

// ZeroFluxNeumann clamps out-of-range index components to the nearest
// valid index. This is the default boundary condition.
type ZeroFluxNeumann[T Pixel] = grid.ZeroFluxNeumann[T]

// Constant substitutes a fixed fill value for out-of-extent accesses.
type Constant[T Pixel] = grid.Constant[T]

// Periodic wraps out-of-range index components around their axes.
type Periodic[T Pixel] = grid.Periodic[T]

// NewRegion builds a region from a start index and size.
func NewRegion(start Index, size Size) Region {
	return grid.NewRegion(start, size)
}

// ZeroRegion builds a region of the given size starting at the origin.
func ZeroRegion(size Size) Region {
	return grid.ZeroRegion(size)
}

// New creates a grid covering extent with zero-valued pixels.
func New[T Pixel](extent Region) (*Grid[T], error) {
	return grid.New[T](extent)
}

// FromSlice creates a grid over extent from a row-major pixel slice.
func FromSlice[T Pixel](data []T, extent Region) (*Grid[T], error) {
	return grid.FromSlice(data, extent)
}
