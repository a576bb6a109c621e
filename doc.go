// Package voronoi labels the cells of a rectangular grid with their nearest
// seed, producing a discrete Voronoi tessellation.
//
// # Overview
//
// Seeds are integer grid points, numbered 1..N in input order. After a fill
// every cell of the grid carries the id of the seed closest to it in
// Euclidean distance. Only cells are classified; no edges or vertices of the
// continuous diagram are computed.
//
// # Quick Start
//
//	import "github.com/gogpu/voronoi"
//
//	seeds := []voronoi.Point{voronoi.Pt(0, 0), voronoi.Pt(3, 0)}
//	g, _, err := voronoi.Tessellate(ctx, voronoi.Pt(4, 1), seeds, voronoi.Options{})
//	if err != nil {
//		return err
//	}
//	fmt.Println(g.IDs()) // [[1 1 2 2]]
//
// # Engines
//
// Two engines produce the labeling:
//   - Sequential: a multi-source breadth-first flood fill over a single FIFO
//     queue. Exact and deterministic, including ties.
//   - JumpFlood: rounds of per-seed tasks on a worker pool, with neighbor
//     offsets that shrink from half the grid down to one cell. Cells are
//     individually locked. Faster on large grids; cells at exactly equal
//     distance from two seeds may go to either.
//
// Both engines share one ownership rule, Claim: an unassigned cell is taken,
// an owned cell moves only to a strictly closer seed. Ids are never reset
// to 0.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Neighbors are the eight surrounding cells
//
// # Logging
//
// The engines log through the logger set with SetLogger. By default nothing
// is logged.
package voronoi
