// Package matrix_test provides benchmarks for the distance kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/AntonioDantas/RKO/matrix"
)

var benchSizes = []int{128, 512}

// sink to defeat dead-code elimination
var sinkD *matrix.Dense

func BenchmarkEuclidean(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pts := randomPoints(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Euclidean(pts)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkNormalizeMinMax(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d, err := matrix.Euclidean(randomPoints(n, 4242))
			if err != nil {
				b.Fatal(err)
			}
			lo, hi, _ := matrix.Extent(d)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD, _ = matrix.NormalizeMinMax(d, lo, hi)
			}
		})
	}
}
