package filter

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lucasalg/ITK/internal/grid"
	"github.com/lucasalg/ITK/internal/parallel"
)

func benchInput(n int) *grid.Grid[float64] {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	g, err := grid.FromSlice(data, grid.ZeroRegion(grid.Size{n, n}))
	if err != nil {
		panic(err)
	}
	return g
}

func BenchmarkApply_Gaussian5x5(b *testing.B) {
	in := benchInput(512)
	out, _ := grid.New[float64](in.Extent())

	op, err := GaussianOperator[float64]([]int{2, 2}, 1.0)
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			f := New[float64, float64, float64]()
			f.SetOperator(op)
			f.SetParallelism(parallel.Config{Enabled: workers > 1, NumWorkers: workers, MinItems: 1})

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := f.Apply(in, out, out.Extent()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkApply_Mean3x3(b *testing.B) {
	in := benchInput(256)
	out, _ := grid.New[float64](in.Extent())

	op, err := MeanOperator[float64]([]int{1, 1})
	if err != nil {
		b.Fatal(err)
	}

	f := New[float64, float64, float64]()
	f.SetOperator(op)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Apply(in, out, out.Extent()); err != nil {
			b.Fatal(err)
		}
	}
}
