package filter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasalg/ITK/internal/grid"
	"github.com/lucasalg/ITK/internal/parallel"
)

func newOp(t *testing.T, coeffs []float64, radius []int) Operator[float64] {
	t.Helper()
	op, err := NewOperator(coeffs, radius)
	require.NoError(t, err)
	return op
}

func mustGrid[T grid.Pixel](t *testing.T, data []T, size grid.Size) *grid.Grid[T] {
	t.Helper()
	g, err := grid.FromSlice(data, grid.ZeroRegion(size))
	require.NoError(t, err)
	return g
}

func newOutput[T grid.Pixel](t *testing.T, extent grid.Region) *grid.Grid[T] {
	t.Helper()
	g, err := grid.New[T](extent)
	require.NoError(t, err)
	return g
}

func sequential() parallel.Config {
	return parallel.Config{Enabled: false, NumWorkers: 1}
}

func TestApply_1D_BoxKernel(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3, 4, 5}, grid.Size{5})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))
	f.SetParallelism(sequential())

	require.NoError(t, f.Apply(in, out, out.Extent()))

	// Edges clamp to the nearest interior value.
	assert.Equal(t, []float64{4, 6, 9, 12, 14}, out.Data())
}

func TestApply_RadiusZeroIdentity(t *testing.T) {
	in := mustGrid(t, []float64{3, 1, 4, 1, 5, 9}, grid.Size{2, 3})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1}, []int{0, 0}))

	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.Equal(t, in.Data(), out.Data())
}

func TestApply_2D_Mean(t *testing.T) {
	in := mustGrid(t, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, grid.Size{3, 3})
	out := newOutput[float64](t, in.Extent())

	op, err := MeanOperator[float64]([]int{1, 1})
	require.NoError(t, err)

	f := New[float64, float64, float64]()
	f.SetOperator(op)
	f.SetParallelism(sequential())

	require.NoError(t, f.Apply(in, out, out.Extent()))

	assert.InDelta(t, 5.0, out.At(1, 1), 1e-12, "interior mean")
	assert.InDelta(t, 21.0/9.0, out.At(0, 0), 1e-12, "corner mean with clamped window")
}

func TestApply_LaplacianOfRampIsZero(t *testing.T) {
	// f(y,x) = 3y + 2x is harmonic, so the discrete Laplacian vanishes
	// away from the boundary.
	data := make([]float64, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			data[y*5+x] = float64(3*y + 2*x)
		}
	}
	in := mustGrid(t, data, grid.Size{5, 5})
	out := newOutput[float64](t, in.Extent())

	op, err := LaplacianOperator[float64](2)
	require.NoError(t, err)

	f := New[float64, float64, float64]()
	f.SetOperator(op)

	require.NoError(t, f.Apply(in, out, out.Extent()))

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			assert.InDelta(t, 0.0, out.At(y, x), 1e-12, "interior (%d,%d)", y, x)
		}
	}
}

func TestApply_DerivativeOfRamp(t *testing.T) {
	data := make([]float64, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			data[y*5+x] = float64(x)
		}
	}
	in := mustGrid(t, data, grid.Size{5, 5})
	out := newOutput[float64](t, in.Extent())

	op, err := DerivativeOperator[float64](2, 1)
	require.NoError(t, err)

	f := New[float64, float64, float64]()
	f.SetOperator(op)

	require.NoError(t, f.Apply(in, out, out.Extent()))

	for y := 0; y < 5; y++ {
		for x := 1; x < 4; x++ {
			assert.InDelta(t, 1.0, out.At(y, x), 1e-12, "d/dx at (%d,%d)", y, x)
		}
	}
}

func TestApply_MirrorForAsymmetricKernel(t *testing.T) {
	in := mustGrid(t, []float64{0, 10, 20, 30, 40}, grid.Size{5})
	out := newOutput[float64](t, in.Extent())

	op := newOp(t, []float64{1, 2, 3}, []int{1})

	f := New[float64, float64, float64]()
	f.SetOperator(op.Mirror())
	require.NoError(t, f.Apply(in, out, out.Extent()))

	// Mirrored sweep at index 2: 3*10 + 2*20 + 1*30 = 100.
	assert.Equal(t, 100.0, out.At(2))

	f.SetOperator(op)
	require.NoError(t, f.Apply(in, out, out.Extent()))

	// Plain correlation at index 2: 1*10 + 2*20 + 3*30 = 140.
	assert.Equal(t, 140.0, out.At(2))
}

func TestApply_BoundaryOverride(t *testing.T) {
	in := mustGrid(t, []float64{1, 1, 1, 1, 1}, grid.Size{5})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))

	bc := grid.Constant[float64]{Value: 0}
	f.OverrideBoundaryCondition(bc)
	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.Equal(t, []float64{2, 3, 3, 3, 2}, out.Data())

	// nil restores the default clamp condition.
	f.OverrideBoundaryCondition(nil)
	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.Equal(t, []float64{3, 3, 3, 3, 3}, out.Data())
}

func TestApply_PeriodicBoundary(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3, 4, 5}, grid.Size{5})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))
	f.OverrideBoundaryCondition(grid.Periodic[float64]{})

	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.Equal(t, []float64{8, 6, 9, 12, 10}, out.Data())
}

func TestApply_MixedPixelTypes(t *testing.T) {
	// uint8 input, float64 operator values, float32 output.
	in := mustGrid(t, []uint8{10, 20, 30}, grid.Size{3})
	out := newOutput[float32](t, in.Extent())

	op, err := MeanOperator[float64]([]int{1})
	require.NoError(t, err)

	f := New[uint8, float32, float64]()
	f.SetOperator(op)

	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.InDelta(t, (10.0+10.0+20.0)/3.0, out.At(0), 1e-5)
	assert.InDelta(t, 20.0, out.At(1), 1e-5)
	assert.InDelta(t, (20.0+30.0+30.0)/3.0, out.At(2), 1e-5)
}

func TestApply_IntegerValueType(t *testing.T) {
	in := mustGrid(t, []int32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}, grid.Size{3, 3})
	out := newOutput[int32](t, in.Extent())

	op, err := LaplacianOperator[int32](2)
	require.NoError(t, err)

	f := New[int32, int32, int32]()
	f.SetOperator(op)

	require.NoError(t, f.Apply(in, out, out.Extent()))
	assert.Equal(t, int32(-4), out.At(1, 1))
	assert.Equal(t, int32(1), out.At(0, 1))
	assert.Equal(t, int32(0), out.At(0, 0))
}

func TestApply_SubRegionOnly(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3, 4, 5}, grid.Size{5})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))

	region := grid.NewRegion(grid.Index{1}, grid.Size{3})
	require.NoError(t, f.Apply(in, out, region))

	// Pixels outside the requested region stay untouched.
	assert.Equal(t, []float64{0, 6, 9, 12, 0}, out.Data())
}

func TestApply_PartitionIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, 17*13)
	for i := range data {
		data[i] = rng.Float64()
	}
	in := mustGrid(t, data, grid.Size{17, 13})

	op, err := GaussianOperator[float64]([]int{2, 2}, 1.5)
	require.NoError(t, err)

	reference := newOutput[float64](t, in.Extent())
	ref := New[float64, float64, float64]()
	ref.SetOperator(op)
	ref.SetParallelism(sequential())
	require.NoError(t, ref.Apply(in, reference, reference.Extent()))

	for _, workers := range []int{2, 3, 4, 7, 16} {
		out := newOutput[float64](t, in.Extent())

		f := New[float64, float64, float64]()
		f.SetOperator(op)
		f.SetParallelism(parallel.Config{Enabled: true, NumWorkers: workers, MinItems: 1})

		require.NoError(t, f.Apply(in, out, out.Extent()))
		assert.Equal(t, reference.Data(), out.Data(), "workers=%d", workers)
	}
}

func TestApply_ConfigurationErrors(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3, 4}, grid.Size{2, 2})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	assert.ErrorIs(t, f.Apply(in, out, out.Extent()), ErrNoOperator)

	// 1-D operator against 2-D grids.
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))
	assert.ErrorIs(t, f.Apply(in, out, out.Extent()), ErrDimensionMismatch)

	// Output region outside the output extent.
	op, err := MeanOperator[float64]([]int{1, 1})
	require.NoError(t, err)
	f.SetOperator(op)
	outside := grid.NewRegion(grid.Index{0, 0}, grid.Size{3, 3})
	assert.ErrorIs(t, f.Apply(in, out, outside), ErrRegionOutOfBounds)
}

func TestApply_EmptyInputRegionFatal(t *testing.T) {
	in := mustGrid(t, []float64{1}, grid.Size{1})
	out := newOutput[float64](t, grid.NewRegion(grid.Index{10}, grid.Size{1}))

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))

	err := f.Apply(in, out, out.Extent())
	assert.ErrorIs(t, err, ErrEmptyInputRegion, "disjoint input must fail loudly, not produce empty output")
}

func TestApply_EmptyOutputRegionIsNoOp(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3}, grid.Size{3})
	out := newOutput[float64](t, in.Extent())

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))

	empty := grid.NewRegion(grid.Index{0}, grid.Size{0})
	require.NoError(t, f.Apply(in, out, empty))
	assert.Equal(t, []float64{0, 0, 0}, out.Data())
}

func TestRequiredInputRegion(t *testing.T) {
	extent := grid.ZeroRegion(grid.Size{10, 10})
	output := grid.NewRegion(grid.Index{2, 2}, grid.Size{4, 4})

	f := New[float64, float64, float64]()
	_, err := f.RequiredInputRegion(output, extent)
	assert.ErrorIs(t, err, ErrNoOperator)

	// Radius zero: required region equals the output region.
	f.SetOperator(newOp(t, []float64{1}, []int{0, 0}))
	got, err := f.RequiredInputRegion(output, extent)
	require.NoError(t, err)
	assert.True(t, got.Equal(output), "got %v", got)

	// Radius one: padded by one and still inside the extent.
	op, err := MeanOperator[float64]([]int{1, 1})
	require.NoError(t, err)
	f.SetOperator(op)
	got, err = f.RequiredInputRegion(output, extent)
	require.NoError(t, err)
	assert.True(t, got.Equal(grid.NewRegion(grid.Index{1, 1}, grid.Size{6, 6})), "got %v", got)

	// Huge radius saturates to the whole extent.
	op, err = MeanOperator[float64]([]int{50, 50})
	require.NoError(t, err)
	f.SetOperator(op)
	got, err = f.RequiredInputRegion(output, extent)
	require.NoError(t, err)
	assert.True(t, got.Equal(extent), "got %v", got)
}

func TestRequiredInputRegion_ClipsAtEdges(t *testing.T) {
	extent := grid.ZeroRegion(grid.Size{5})
	output := grid.NewRegion(grid.Index{0}, grid.Size{2})

	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 1, 1}, []int{1}))

	got, err := f.RequiredInputRegion(output, extent)
	require.NoError(t, err)
	assert.True(t, got.Equal(grid.NewRegion(grid.Index{0}, grid.Size{3})), "got %v", got)
}

func TestSetOperator_Copies(t *testing.T) {
	f := New[float64, float64, float64]()
	f.SetOperator(newOp(t, []float64{1, 2, 3}, []int{1}))

	// The accessor hands back a copy; mutating it cannot reach the
	// filter's internal operator.
	stolen := f.Operator().Coefficients()
	stolen[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, f.Operator().Coefficients())
}

func TestInnerProduct(t *testing.T) {
	in := mustGrid(t, []float64{1, 2, 3, 4, 5}, grid.Size{5})
	op := newOp(t, []float64{1, 1, 1}, []int{1})
	bc := grid.ZeroFluxNeumann[float64]{}

	assert.Equal(t, 4.0, InnerProduct(op, in, grid.Index{0}, bc))
	assert.Equal(t, 9.0, InnerProduct(op, in, grid.Index{2}, bc))
	assert.Equal(t, 14.0, InnerProduct(op, in, grid.Index{4}, bc))
}
