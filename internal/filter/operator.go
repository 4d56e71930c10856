package filter

import (
	"errors"
	"fmt"

	"github.com/lucasalg/ITK/internal/grid"
)

// Errors returned by operator construction and filter application.
var (
	ErrNoOperator        = errors.New("filter: no operator set")
	ErrEmptyOperator     = errors.New("filter: operator has no axes")
	ErrCoefficientCount  = errors.New("filter: coefficient count does not match radius")
	ErrNegativeRadius    = errors.New("filter: negative radius")
	ErrDimensionMismatch = errors.New("filter: dimension mismatch")
	ErrRegionOutOfBounds = errors.New("filter: output region outside output extent")
	ErrEmptyInputRegion  = errors.New("filter: resolved input region is empty")
)

// Value is the constraint for operator coefficient types: numeric types
// closed under addition and multiplication. Input pixels convert to the
// value type and accumulated results convert to the output pixel type
// by ordinary Go conversion; both conversions are checked at compile
// time by the type sets involved.
type Value interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Operator is an immutable flat sequence of coefficients logically
// indexed by a window offset in [-radius[d], +radius[d]] per axis d.
// Coefficients are laid out lexicographically over per-axis offsets
// (row-major), the same order the window enumerates pixel values, so
// inner products pair them positionally.
type Operator[V Value] struct {
	radius []int
	coeffs []V
}

// NewOperator builds an operator from a row-major coefficient slice and
// a per-axis radius. The coefficient count must equal the window size
// prod(2*radius[d]+1). Both slices are copied.
func NewOperator[V Value](coeffs []V, radius []int) (Operator[V], error) {
	if len(radius) == 0 {
		return Operator[V]{}, ErrEmptyOperator
	}
	want := 1
	for d, r := range radius {
		if r < 0 {
			return Operator[V]{}, fmt.Errorf("%w: axis %d has radius %d", ErrNegativeRadius, d, r)
		}
		want *= 2*r + 1
	}
	if len(coeffs) != want {
		return Operator[V]{}, fmt.Errorf("%w: radius %v needs %d coefficients, got %d",
			ErrCoefficientCount, radius, want, len(coeffs))
	}
	return Operator[V]{
		radius: append([]int(nil), radius...),
		coeffs: append([]V(nil), coeffs...),
	}, nil
}

// Dim returns the operator's dimensionality.
func (op Operator[V]) Dim() int {
	return len(op.radius)
}

// Len returns the number of coefficients (the window size).
func (op Operator[V]) Len() int {
	return len(op.coeffs)
}

// Radius returns a copy of the per-axis radius.
func (op Operator[V]) Radius() []int {
	return append([]int(nil), op.radius...)
}

// Coefficients returns a copy of the coefficient slice in window order.
func (op Operator[V]) Coefficients() []V {
	return append([]V(nil), op.coeffs...)
}

// At returns the coefficient for the given per-axis window offset.
// Panics if the offset dimension disagrees or lies outside the radius.
func (op Operator[V]) At(offset ...int) V {
	if len(offset) != len(op.radius) {
		panic(fmt.Sprintf("expected %d offsets, got %d", len(op.radius), len(offset)))
	}
	flat := 0
	for d, o := range offset {
		r := op.radius[d]
		if o < -r || o > r {
			panic(fmt.Sprintf("offset %d outside radius %d on axis %d", o, r, d))
		}
		flat = flat*(2*r+1) + (o + r)
	}
	return op.coeffs[flat]
}

// Mirror returns the operator with every coefficient reflected through
// the window center. Sweeping the mirrored operator performs a true
// convolution for kernels that are not symmetric across their axes.
func (op Operator[V]) Mirror() Operator[V] {
	out := op.Clone()
	for i, j := 0, len(out.coeffs)-1; i < j; i, j = i+1, j-1 {
		out.coeffs[i], out.coeffs[j] = out.coeffs[j], out.coeffs[i]
	}
	return out
}

// Clone returns a deep copy of the operator.
func (op Operator[V]) Clone() Operator[V] {
	return Operator[V]{
		radius: append([]int(nil), op.radius...),
		coeffs: append([]V(nil), op.coeffs...),
	}
}

// Offsets returns every window offset in coefficient order.
func (op Operator[V]) Offsets() []grid.Index {
	raw := operatorOffsets(op.radius)
	out := make([]grid.Index, len(raw))
	for i, o := range raw {
		out[i] = grid.Index(o)
	}
	return out
}

// String returns a human-readable representation of the operator.
func (op Operator[V]) String() string {
	return fmt.Sprintf("Operator{radius=%v, len=%d}", op.radius, len(op.coeffs))
}
