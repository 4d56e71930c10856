package filter

import (
	"fmt"

	"github.com/lucasalg/ITK/internal/grid"
	"github.com/lucasalg/ITK/internal/parallel"
)

// Filter applies a single neighborhood operator to a region of an input
// grid, writing one inner product per output pixel. In and Out are the
// input and output pixel types; V is the operator coefficient type.
//
// The zero value is not usable; construct with New and set an operator
// before applying. A Filter is safe for repeated Apply calls but must
// not be reconfigured concurrently with a running Apply.
type Filter[In, Out grid.Pixel, V Value] struct {
	op       Operator[V]
	hasOp    bool
	override grid.BoundaryCondition[In]
	par      parallel.Config
}

// New creates a filter with the default zero-flux Neumann boundary
// condition and parallelism sized to the CPU count.
func New[In, Out grid.Pixel, V Value]() *Filter[In, Out, V] {
	return &Filter[In, Out, V]{par: parallel.DefaultConfig()}
}

// SetOperator installs the operator used to filter the grid. The
// operator is stored as an internal copy: mutating the caller's
// operator afterwards has no effect on the filter.
func (f *Filter[In, Out, V]) SetOperator(op Operator[V]) {
	f.op = op.Clone()
	f.hasOp = true
}

// Operator returns a copy of the installed operator.
func (f *Filter[In, Out, V]) Operator() Operator[V] {
	return f.op.Clone()
}

// OverrideBoundaryCondition replaces the default boundary condition.
// The condition must be pure and safe for concurrent use, and the
// caller must keep it alive for as long as the filter references it.
// Passing nil restores the default zero-flux Neumann condition.
func (f *Filter[In, Out, V]) OverrideBoundaryCondition(bc grid.BoundaryCondition[In]) {
	f.override = bc
}

// BoundaryCondition returns the condition the next Apply will use.
func (f *Filter[In, Out, V]) BoundaryCondition() grid.BoundaryCondition[In] {
	if f.override != nil {
		return f.override
	}
	return grid.ZeroFluxNeumann[In]{}
}

// SetParallelism overrides the worker configuration.
func (f *Filter[In, Out, V]) SetParallelism(cfg parallel.Config) {
	f.par = cfg
}

// RequiredInputRegion reports the minimal input region needed to
// compute outputRegion: the output region padded by the operator radius
// and cropped to the input extent. The surrounding pipeline must
// materialize this region before Apply runs.
func (f *Filter[In, Out, V]) RequiredInputRegion(outputRegion, inputExtent grid.Region) (grid.Region, error) {
	if !f.hasOp {
		return grid.Region{}, ErrNoOperator
	}
	if outputRegion.Dim() != f.op.Dim() || inputExtent.Dim() != f.op.Dim() {
		return grid.Region{}, fmt.Errorf("%w: operator is %dD, output region %dD, input extent %dD",
			ErrDimensionMismatch, f.op.Dim(), outputRegion.Dim(), inputExtent.Dim())
	}
	return outputRegion.Pad(f.op.radius).Crop(inputExtent), nil
}

// Apply sweeps the operator across every pixel of outputRegion and
// writes the resulting inner products to out. Input pixels are shared
// read-only; each worker writes only its own disjoint sub-region, so
// the result is independent of the split factor.
//
// Configuration errors (no operator, mismatched dimensionality, output
// region outside the output extent) and an empty resolved input region
// for a non-empty output abort the whole invocation; no partial output
// is guaranteed on failure.
func (f *Filter[In, Out, V]) Apply(in *grid.Grid[In], out *grid.Grid[Out], outputRegion grid.Region) error {
	if !f.hasOp {
		return ErrNoOperator
	}
	dim := f.op.Dim()
	if in.Dim() != dim || out.Dim() != dim || outputRegion.Dim() != dim {
		return fmt.Errorf("%w: operator is %dD, input %dD, output %dD, region %dD",
			ErrDimensionMismatch, dim, in.Dim(), out.Dim(), outputRegion.Dim())
	}
	if !out.Extent().Contains(outputRegion) {
		return fmt.Errorf("%w: region %v, extent %v", ErrRegionOutOfBounds, outputRegion, out.Extent())
	}
	if outputRegion.IsEmpty() {
		return nil
	}

	required := outputRegion.Pad(f.op.radius).Crop(in.Extent())
	if required.IsEmpty() {
		return fmt.Errorf("%w: output region %v padded by radius %v has no overlap with input extent %v",
			ErrEmptyInputRegion, outputRegion, f.op.radius, in.Extent())
	}

	offsets := operatorOffsets(f.op.radius)
	s := &sweep[In, V]{
		coeffs:   f.op.coeffs,
		offsets:  offsets,
		flat:     flatWindowOffsets(offsets, in.Strides()),
		extent:   in.Extent(),
		interior: interiorRegion(in.Extent(), f.op.radius),
		bc:       f.BoundaryCondition(),
	}
	s.data64, s.coeffs64, s.blocked = blockedPath(in.Data(), f.op.coeffs)

	workers := 1
	if f.par.Enabled && f.par.NumWorkers > 1 {
		workers = f.par.NumWorkers
	}
	subs := outputRegion.Split(workers)

	parallel.For(len(subs), func(i int) {
		applyRegion(s, in, out, subs[i])
	}, parallel.Config{Enabled: workers > 1, NumWorkers: workers, MinItems: 2})

	return nil
}

// sweep carries the per-invocation state shared read-only by every
// worker of one Apply call.
type sweep[In grid.Pixel, V Value] struct {
	coeffs   []V
	offsets  [][]int
	flat     []int
	extent   grid.Region
	interior grid.Region
	bc       grid.BoundaryCondition[In]

	// float64 blocked inner-product path; active when blocked is true.
	blocked  bool
	data64   []float64
	coeffs64 []float64
}

// applyRegion computes one disjoint sub-region. It owns exclusive write
// access to region within out and never reads other output pixels, so
// it runs with no synchronization.
func applyRegion[In, Out grid.Pixel, V Value](s *sweep[In, V], in *grid.Grid[In], out *grid.Grid[Out], region grid.Region) {
	inData := in.Data()
	outData := out.Data()

	// Per-worker scratch: the neighbor index for the boundary path and,
	// on the blocked path, the gathered window and product buffers.
	nb := make(grid.Index, region.Dim())
	var win, prod []float64
	if s.blocked {
		win = make([]float64, len(s.coeffs))
		prod = make([]float64, len(s.coeffs))
	}

	idx := region.Start.Clone()
	for remaining := region.NumPixels(); remaining > 0; remaining-- {
		var acc float64
		if s.interior.ContainsIndex(idx) {
			base := in.Offset(idx)
			if s.blocked {
				acc = blockedInnerProduct(s.data64, s.coeffs64, s.flat, base, win, prod)
			} else {
				for k, d := range s.flat {
					acc += float64(s.coeffs[k] * V(inData[base+d]))
				}
			}
		} else {
			for k, off := range s.offsets {
				for d := range nb {
					nb[d] = idx[d] + off[d]
				}
				var px In
				if s.extent.ContainsIndex(nb) {
					px = inData[in.Offset(nb)]
				} else {
					px = s.bc.Resolve(in, nb)
				}
				acc += float64(s.coeffs[k] * V(px))
			}
		}
		outData[out.Offset(idx)] = Out(acc)

		// Row-major advance within the sub-region.
		for d := region.Dim() - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < region.Start[d]+region.Size[d] {
				break
			}
			idx[d] = region.Start[d]
		}
	}
}
