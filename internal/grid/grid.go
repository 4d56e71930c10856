package grid

import "fmt"

// Pixel is the constraint for supported grid pixel types. All members
// are numeric so pixels convert to any operator value type without
// runtime checks.
type Pixel interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Grid is an N-dimensional array of pixels covering an extent region.
// Storage is row-major over the extent; the extent may start at a
// non-zero index. Direct reads and writes are only valid inside the
// extent — anything outside must be resolved through a
// BoundaryCondition.
type Grid[T Pixel] struct {
	extent  Region
	strides []int
	data    []T
}

// New creates a grid covering extent with zero-valued pixels.
func New[T Pixel](extent Region) (*Grid[T], error) {
	if err := extent.Size.Validate(); err != nil {
		return nil, fmt.Errorf("grid extent: %w", err)
	}
	if extent.Dim() == 0 {
		return nil, fmt.Errorf("grid extent: zero-dimensional")
	}
	return &Grid[T]{
		extent:  extent.Clone(),
		strides: extent.Size.ComputeStrides(),
		data:    make([]T, extent.Size.NumPixels()),
	}, nil
}

// FromSlice creates a grid over extent from a row-major pixel slice.
// The slice is copied into the grid's own storage.
func FromSlice[T Pixel](data []T, extent Region) (*Grid[T], error) {
	g, err := New[T](extent)
	if err != nil {
		return nil, err
	}
	if len(data) != len(g.data) {
		return nil, fmt.Errorf("extent %v requires %d pixels, but got %d", extent, len(g.data), len(data))
	}
	copy(g.data, data)
	return g, nil
}

// Extent returns the grid's largest possible region.
func (g *Grid[T]) Extent() Region {
	return g.extent.Clone()
}

// Dim returns the grid's dimensionality.
func (g *Grid[T]) Dim() int {
	return g.extent.Dim()
}

// NumPixels returns the total number of pixels in the grid.
func (g *Grid[T]) NumPixels() int {
	return len(g.data)
}

// Strides returns the row-major strides of the backing storage.
func (g *Grid[T]) Strides() []int {
	return g.strides
}

// Data returns the backing pixel slice in row-major extent order.
//
// WARNING: modifications to the returned slice modify the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// Offset returns the flat storage offset of idx. The index must lie
// inside the extent; no bounds check is performed.
func (g *Grid[T]) Offset(idx Index) int {
	off := 0
	for d, c := range idx {
		off += (c - g.extent.Start[d]) * g.strides[d]
	}
	return off
}

// At returns the pixel at the given index.
// Panics if the index is outside the extent.
func (g *Grid[T]) At(idx ...int) T {
	g.checkIndex(idx)
	return g.data[g.Offset(idx)]
}

// Set stores value at the given index.
// Panics if the index is outside the extent.
func (g *Grid[T]) Set(value T, idx ...int) {
	g.checkIndex(idx)
	g.data[g.Offset(idx)] = value
}

func (g *Grid[T]) checkIndex(idx Index) {
	if len(idx) != g.extent.Dim() {
		panic(fmt.Sprintf("expected %d indices, got %d", g.extent.Dim(), len(idx)))
	}
	if !g.extent.ContainsIndex(idx) {
		panic(fmt.Sprintf("index %v outside extent %v", []int(idx), g.extent))
	}
}

// Clone creates a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		extent:  g.extent.Clone(),
		strides: append([]int(nil), g.strides...),
		data:    make([]T, len(g.data)),
	}
	copy(out.data, g.data)
	return out
}

// String returns a human-readable representation of the grid.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid%v (%d pixels)", []int(g.extent.Size), len(g.data))
}
