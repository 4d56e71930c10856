package filter

import "github.com/lucasalg/ITK/internal/grid"

// operatorOffsets enumerates every window offset for the given radius
// in lexicographic per-axis order: the last axis varies fastest, the
// same row-major order operator coefficients are laid out in. The
// positional pairing between this enumeration and the coefficient
// slice is what makes the inner product correct.
func operatorOffsets(radius []int) [][]int {
	n := 1
	for _, r := range radius {
		n *= 2*r + 1
	}

	out := make([][]int, n)
	cur := make([]int, len(radius))
	for d, r := range radius {
		cur[d] = -r
	}
	for i := 0; i < n; i++ {
		out[i] = append([]int(nil), cur...)

		for d := len(radius) - 1; d >= 0; d-- {
			cur[d]++
			if cur[d] <= radius[d] {
				break
			}
			cur[d] = -radius[d]
		}
	}
	return out
}

// flatWindowOffsets converts window offsets into flat storage deltas
// for a window known to lie entirely inside the input extent.
func flatWindowOffsets(offsets [][]int, strides []int) []int {
	out := make([]int, len(offsets))
	for i, off := range offsets {
		d := 0
		for axis, o := range off {
			d += o * strides[axis]
		}
		out[i] = d
	}
	return out
}

// interiorRegion shrinks extent by radius per axis: the sub-region
// whose windows never leave the extent. May be empty when the radius
// exceeds half the extent.
func interiorRegion(extent grid.Region, radius []int) grid.Region {
	out := extent.Clone()
	for d, r := range radius {
		out.Start[d] += r
		out.Size[d] -= 2 * r
		if out.Size[d] < 0 {
			out.Size[d] = 0
		}
	}
	return out
}

// InnerProduct computes the inner product of the operator with the
// window of in centered at center. Window accesses outside the input
// extent are resolved through bc. The sum is accumulated in float64.
func InnerProduct[In grid.Pixel, V Value](op Operator[V], in *grid.Grid[In], center grid.Index, bc grid.BoundaryCondition[In]) float64 {
	extent := in.Extent()
	data := in.Data()
	nb := make(grid.Index, len(center))

	var acc float64
	for k, off := range operatorOffsets(op.radius) {
		for d := range nb {
			nb[d] = center[d] + off[d]
		}
		var px In
		if extent.ContainsIndex(nb) {
			px = data[in.Offset(nb)]
		} else {
			px = bc.Resolve(in, nb)
		}
		acc += float64(op.coeffs[k] * V(px))
	}
	return acc
}
