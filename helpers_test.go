package voronoi

import (
	"math/rand"
	"testing"
)

// nearest returns the ids of all seeds at minimal distance from p.
func nearest(p Point, seeds []Point) map[int]bool {
	best := -1
	ids := make(map[int]bool)
	for i, s := range seeds {
		d := p.DistanceSquared(s)
		switch {
		case best < 0 || d < best:
			best = d
			clear(ids)
			ids[i+1] = true
		case d == best:
			ids[i+1] = true
		}
	}
	return ids
}

// randomSeeds returns n distinct points inside size.
func randomSeeds(rng *rand.Rand, size Point, n int) []Point {
	seen := make(map[Point]bool, n)
	seeds := make([]Point, 0, n)
	for len(seeds) < n {
		p := Pt(rng.Intn(size.X), rng.Intn(size.Y))
		if !seen[p] {
			seen[p] = true
			seeds = append(seeds, p)
		}
	}
	return seeds
}

// checkFilled verifies coverage, seed self-ownership and local optimality:
// no cell has a neighbor whose owner is strictly closer to it.
func checkFilled(t *testing.T, g *Grid) {
	t.Helper()

	size := g.Size()
	seeds := g.Seeds()
	for i, s := range seeds {
		if id := g.ID(s); id != i+1 {
			t.Errorf("seed %d at %v owned by %d", i+1, s, id)
		}
	}

	for y := range size.Y {
		for x := range size.X {
			p := Pt(x, y)
			c := g.Cell(p)
			if c.ID == 0 {
				t.Errorf("cell %v unassigned", p)
				continue
			}
			if c.Seed != seeds[c.ID-1] {
				t.Errorf("cell %v id %d has seed %v, want %v", p, c.ID, c.Seed, seeds[c.ID-1])
			}
			own := p.DistanceSquared(c.Seed)
			for _, d := range Directions {
				q, ok := p.Neighbor(d.X, d.Y, 1, size)
				if !ok {
					continue
				}
				other := g.Cell(q)
				if p.DistanceSquared(other.Seed) < own {
					t.Errorf("cell %v owned by %d, but neighbor %v's seed %d is closer", p, c.ID, q, other.ID)
				}
			}
		}
	}
}

// exactRatio returns the fraction of cells whose owner is one of their
// nearest seeds.
func exactRatio(g *Grid) float64 {
	size := g.Size()
	hit := 0
	for y := range size.Y {
		for x := range size.X {
			if nearest(Pt(x, y), g.Seeds())[g.IDAt(x, y)] {
				hit++
			}
		}
	}
	return float64(hit) / float64(g.Len())
}
