package grid

import "fmt"

// Region is an axis-aligned index range: a start index plus a per-axis
// size. The range covered on axis d is [Start[d], Start[d]+Size[d]),
// half-open. A region with any zero size component is empty.
type Region struct {
	Start Index
	Size  Size
}

// NewRegion builds a region from a start index and size.
// Panics if the dimensions disagree; sizes may be zero (empty region)
// but never negative.
func NewRegion(start Index, size Size) Region {
	if len(start) != len(size) {
		panic(fmt.Sprintf("region start dimension %d != size dimension %d", len(start), len(size)))
	}
	for d, s := range size {
		if s < 0 {
			panic(fmt.Sprintf("region size at axis %d is negative: %d", d, s))
		}
	}
	return Region{Start: start.Clone(), Size: size.Clone()}
}

// ZeroRegion builds a region of the given size starting at the origin.
func ZeroRegion(size Size) Region {
	return NewRegion(make(Index, len(size)), size)
}

// Dim returns the dimensionality of the region.
func (r Region) Dim() int {
	return len(r.Size)
}

// IsEmpty reports whether the region covers no pixels.
func (r Region) IsEmpty() bool {
	if len(r.Size) == 0 {
		return true
	}
	for _, s := range r.Size {
		if s <= 0 {
			return true
		}
	}
	return false
}

// NumPixels returns the number of pixels the region covers.
func (r Region) NumPixels() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Size.NumPixels()
}

// End returns the exclusive upper bound of the region per axis.
func (r Region) End() Index {
	end := make(Index, len(r.Start))
	for d := range end {
		end[d] = r.Start[d] + r.Size[d]
	}
	return end
}

// ContainsIndex reports whether idx lies inside the region.
func (r Region) ContainsIndex(idx Index) bool {
	if len(idx) != len(r.Start) {
		return false
	}
	for d := range idx {
		if idx[d] < r.Start[d] || idx[d] >= r.Start[d]+r.Size[d] {
			return false
		}
	}
	return true
}

// Contains reports whether other lies entirely inside r.
// An empty other is contained in anything of matching dimension.
func (r Region) Contains(other Region) bool {
	if other.Dim() != r.Dim() {
		return false
	}
	if other.IsEmpty() {
		return true
	}
	for d := range other.Start {
		if other.Start[d] < r.Start[d] || other.Start[d]+other.Size[d] > r.Start[d]+r.Size[d] {
			return false
		}
	}
	return true
}

// Equal reports whether two regions have identical start and size.
func (r Region) Equal(other Region) bool {
	return r.Start.Equal(other.Start) && r.Size.Equal(other.Size)
}

// Clone returns a deep copy of the region.
func (r Region) Clone() Region {
	return Region{Start: r.Start.Clone(), Size: r.Size.Clone()}
}

// Pad returns the region expanded symmetrically by radius[d] on axis d.
// Panics if the radius dimension disagrees or any component is negative.
func (r Region) Pad(radius []int) Region {
	if len(radius) != r.Dim() {
		panic(fmt.Sprintf("pad radius dimension %d != region dimension %d", len(radius), r.Dim()))
	}
	out := r.Clone()
	for d, rad := range radius {
		if rad < 0 {
			panic(fmt.Sprintf("pad radius at axis %d is negative: %d", d, rad))
		}
		out.Start[d] -= rad
		out.Size[d] += 2 * rad
	}
	return out
}

// Crop intersects the region with bound. The result never has a
// negative extent: axes with no overlap degenerate to size zero, which
// makes the returned region empty.
func (r Region) Crop(bound Region) Region {
	if bound.Dim() != r.Dim() {
		panic(fmt.Sprintf("crop bound dimension %d != region dimension %d", bound.Dim(), r.Dim()))
	}
	out := Region{Start: make(Index, r.Dim()), Size: make(Size, r.Dim())}
	for d := range out.Start {
		lo := max(r.Start[d], bound.Start[d])
		hi := min(r.Start[d]+r.Size[d], bound.Start[d]+bound.Size[d])
		out.Start[d] = lo
		out.Size[d] = max(hi-lo, 0)
	}
	return out
}

// Split partitions the region into at most n disjoint sub-regions whose
// union reconstructs the region exactly. The cut runs along the axis
// with the largest extent (lowest such axis on ties) so the choice is
// deterministic. For n <= 1, or an empty region, the region itself is
// returned as the only part. Fewer than n parts are returned when the
// chosen axis has fewer than n pixels.
func (r Region) Split(n int) []Region {
	if n <= 1 || r.IsEmpty() {
		return []Region{r.Clone()}
	}

	axis := 0
	for d := 1; d < r.Dim(); d++ {
		if r.Size[d] > r.Size[axis] {
			axis = d
		}
	}

	parts := min(n, r.Size[axis])
	base := r.Size[axis] / parts
	rem := r.Size[axis] % parts

	out := make([]Region, 0, parts)
	start := r.Start[axis]
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		sub := r.Clone()
		sub.Start[axis] = start
		sub.Size[axis] = size
		out = append(out, sub)
		start += size
	}
	return out
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region{start=%v, size=%v}", []int(r.Start), []int(r.Size))
}
