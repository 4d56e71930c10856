package grid

import "fmt"

// Index is an N-dimensional pixel coordinate. Index values are absolute:
// a grid whose extent starts at a non-zero index is addressed with the
// same coordinates the extent declares.
type Index []int

// Equal reports whether two indices are identical.
func (i Index) Equal(other Index) bool {
	if len(i) != len(other) {
		return false
	}
	for d := range i {
		if i[d] != other[d] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the index.
func (i Index) Clone() Index {
	clone := make(Index, len(i))
	copy(clone, i)
	return clone
}

// Add returns a new index offset by the given per-axis deltas.
// Panics if the lengths differ.
func (i Index) Add(offset []int) Index {
	if len(i) != len(offset) {
		panic(fmt.Sprintf("index dimension %d != offset dimension %d", len(i), len(offset)))
	}
	out := make(Index, len(i))
	for d := range i {
		out[d] = i[d] + offset[d]
	}
	return out
}

// String returns a human-readable representation of the index.
func (i Index) String() string {
	return fmt.Sprintf("%v", []int(i))
}
