package grid

// BoundaryCondition resolves a window access that falls outside a
// grid's extent to a substitute pixel value.
//
// Resolve is only ever called with an out-of-extent index. It must be a
// pure function of the grid and the index: independent sub-regions of
// one filter invocation call it concurrently on the same grid, with no
// synchronization. A caller-supplied condition must stay alive for the
// whole invocation it is installed on.
type BoundaryCondition[T Pixel] interface {
	Resolve(g *Grid[T], idx Index) T
}

// ZeroFluxNeumann is the default boundary condition. Each out-of-range
// index component is clamped to the nearest valid index on its axis and
// the pixel at the resulting in-range index is returned, so the grid
// edge values extend outward unchanged (zero flux across the boundary).
type ZeroFluxNeumann[T Pixel] struct{}

// Resolve clamps idx into the extent and reads the resulting pixel.
func (ZeroFluxNeumann[T]) Resolve(g *Grid[T], idx Index) T {
	off := 0
	for d, c := range idx {
		lo := g.extent.Start[d]
		hi := lo + g.extent.Size[d] - 1
		if c < lo {
			c = lo
		} else if c > hi {
			c = hi
		}
		off += (c - lo) * g.strides[d]
	}
	return g.data[off]
}

// Constant substitutes a fixed fill value for every out-of-extent
// access.
type Constant[T Pixel] struct {
	Value T
}

// Resolve returns the fill value regardless of the index.
func (c Constant[T]) Resolve(_ *Grid[T], _ Index) T {
	return c.Value
}

// Periodic wraps each out-of-range index component around its axis, so
// the grid tiles space periodically.
type Periodic[T Pixel] struct{}

// Resolve wraps idx modulo the extent and reads the resulting pixel.
func (Periodic[T]) Resolve(g *Grid[T], idx Index) T {
	off := 0
	for d, c := range idx {
		lo := g.extent.Start[d]
		n := g.extent.Size[d]
		c = (c - lo) % n
		if c < 0 {
			c += n
		}
		off += c * g.strides[d]
	}
	return g.data[off]
}
