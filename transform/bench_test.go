// Package transform_test provides benchmarks for parsing and transform
// application over growing point counts.
package transform_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/hirgon/planar/matrix"
	"github.com/hirgon/planar/transform"
)

// benchPoints are the point counts to benchmark.
var benchPoints = []int{16, 256, 4096}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense

// randomPointString builds a deterministic "x y x y ..." fixture.
func randomPointString(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < 2*n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(rng.NormFloat64(), 'g', -1, 64))
	}
	return b.String()
}

func BenchmarkParsePoints(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			msg := randomPointString(n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pts, err := transform.ParsePoints(msg)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = pts
			}
		})
	}
}

func BenchmarkApplyPoints(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchPoints {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pts, err := transform.ParsePoints(randomPointString(n, 4242))
			if err != nil {
				b.Fatal(err)
			}
			rot := transform.RotationDeg(33)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := transform.ApplyPoints(rot, pts)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkRotationDeg(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM = transform.RotationDeg(float64(i % 360))
	}
}
