// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for element access,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/smath/matrix"
)

var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkB bool
)

// randMatrix returns an n×n matrix filled from a fixed seed.
func randMatrix(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.New[float64](n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	_ = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() })

	return m
}

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randMatrix(b, n, 1337)
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				v, err := m.At(k%n, (k/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkIndex(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randMatrix(b, n, 4242)
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				sinkF = m.Index(k%n, (k/n)%n)
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randMatrix(b, n, 11)
			y := x.Clone()
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				ok, err := x.AllClose(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}
