package grid

import "testing"

func testGrid(t *testing.T) *Grid[float64] {
	t.Helper()
	g, err := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, ZeroRegion(Size{3, 3}))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return g
}

func TestZeroFluxNeumann(t *testing.T) {
	g := testGrid(t)
	bc := ZeroFluxNeumann[float64]{}

	tests := []struct {
		idx  Index
		want float64
	}{
		{Index{-1, 0}, 1},  // clamps to (0,0)
		{Index{-5, -5}, 1}, // both axes clamp low
		{Index{3, 1}, 8},   // clamps to (2,1)
		{Index{1, 7}, 6},   // clamps to (1,2)
		{Index{4, -2}, 7},  // mixed: high row, low column
	}

	for _, tt := range tests {
		if got := bc.Resolve(g, tt.idx); got != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestZeroFluxNeumann_NonZeroStart(t *testing.T) {
	g, _ := FromSlice([]float64{1, 2, 3, 4}, NewRegion(Index{5, 5}, Size{2, 2}))
	bc := ZeroFluxNeumann[float64]{}

	if got := bc.Resolve(g, Index{0, 0}); got != 1 {
		t.Errorf("Resolve(0,0) = %v, want 1 (clamp to start)", got)
	}
	if got := bc.Resolve(g, Index{100, 100}); got != 4 {
		t.Errorf("Resolve(100,100) = %v, want 4 (clamp to end)", got)
	}
}

func TestConstant(t *testing.T) {
	g := testGrid(t)
	bc := Constant[float64]{Value: -7}

	for _, idx := range []Index{{-1, 0}, {3, 3}, {100, -100}} {
		if got := bc.Resolve(g, idx); got != -7 {
			t.Errorf("Resolve(%v) = %v, want -7", idx, got)
		}
	}
}

func TestPeriodic(t *testing.T) {
	g := testGrid(t)
	bc := Periodic[float64]{}

	tests := []struct {
		idx  Index
		want float64
	}{
		{Index{-1, 0}, 7}, // wraps to row 2
		{Index{3, 0}, 1},  // wraps to row 0
		{Index{0, -1}, 3}, // wraps to column 2
		{Index{1, 4}, 5},  // wraps to column 1
		{Index{-3, -3}, 1},
	}

	for _, tt := range tests {
		if got := bc.Resolve(g, tt.idx); got != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}
