// Package filter implements the neighborhood-operator convolution
// engine: a fixed weighted operator is swept across every pixel of a
// requested output region, and the inner product of its coefficients
// with the surrounding window of input pixels is written to the output
// grid.
//
// Window accesses that fall outside the input extent are resolved
// through a boundary condition (zero-flux Neumann clamping by default).
// The output region is split into disjoint sub-regions and computed by
// independent workers with no synchronization; results are identical
// for every split factor.
package filter
