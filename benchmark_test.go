package voronoi

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

// Run with: go test -bench=Fill -benchmem .

func benchSeeds(size Point, n int) []Point {
	return randomSeeds(rand.New(rand.NewSource(42)), size, n)
}

func BenchmarkSequential_Fill(b *testing.B) {
	for _, side := range []int{128, 512} {
		size := Pt(side, side)
		seeds := benchSeeds(size, 64)
		b.Run(fmt.Sprintf("%dx%d", side, side), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				g, _ := NewGrid(size, seeds)
				var e Sequential
				_, _ = e.Fill(context.Background(), g)
			}
		})
	}
}

func BenchmarkJumpFlood_Fill(b *testing.B) {
	size := Pt(512, 512)
	seeds := benchSeeds(size, 64)
	for _, workers := range []int{1, 2, 4, runtime.NumCPU()} {
		b.Run(fmt.Sprintf("512x512-%dw", workers), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				g, _ := NewLockedGrid(size, seeds)
				e := JumpFlood{Workers: workers}
				_, _ = e.Fill(context.Background(), g)
			}
		})
	}
}
