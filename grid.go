package voronoi

import "fmt"

// Labels is a read-only view of cell ownership, consumed by renderers and
// dumps. Both Grid and LockedGrid implement it.
type Labels interface {
	// Size returns the grid dimensions.
	Size() Point

	// IDAt returns the owner id of cell (x, y), 0 if unassigned.
	IDAt(x, y int) int
}

// Grid is a fixed-size rectangle of cells with no synchronization.
//
// Cells are stored in a flat slice in row-major order:
// index = y*width + x.
//
// Thread safety: Grid is NOT safe for concurrent mutation. The sequential
// engine owns it exclusively while running.
type Grid struct {
	size  Point
	cells []Cell
	seeds []Point
}

// NewGrid allocates a grid of the given size and labels each seed cell
// with its 1-based position in seeds.
func NewGrid(size Point, seeds []Point) (*Grid, error) {
	if err := validate(size, seeds); err != nil {
		return nil, err
	}

	g := &Grid{
		size:  size,
		cells: make([]Cell, size.X*size.Y),
		seeds: append([]Point(nil), seeds...),
	}
	for i := range g.cells {
		g.cells[i].Position = Point{X: i % size.X, Y: i / size.X}
	}
	for i, s := range seeds {
		c := &g.cells[g.index(s)]
		c.ID = i + 1
		c.Seed = s
	}
	return g, nil
}

// MaxCells is the largest grid NewGrid and NewLockedGrid accept.
const MaxCells = 1 << 26

// validate checks grid dimensions and seed placement.
func validate(size Point, seeds []Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	if size.X > MaxCells/size.Y {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, size.X, size.Y, MaxCells)
	}
	if len(seeds) == 0 {
		return ErrNoSeeds
	}
	seen := make(map[Point]int, len(seeds))
	for i, s := range seeds {
		if !s.In(size) {
			return fmt.Errorf("%w: seed %d at %v, grid is %dx%d", ErrSeedOutOfBounds, i+1, s, size.X, size.Y)
		}
		if prev, ok := seen[s]; ok {
			return fmt.Errorf("%w: seeds %d and %d at %v", ErrDuplicateSeed, prev, i+1, s)
		}
		seen[s] = i + 1
	}
	return nil
}

func (g *Grid) index(p Point) int {
	return p.Y*g.size.X + p.X
}

// Size returns the grid dimensions.
func (g *Grid) Size() Point {
	return g.size
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Seeds returns the seed coordinates in id order. Seed i+1 is Seeds()[i].
// The returned slice should not be modified.
func (g *Grid) Seeds() []Point {
	return g.seeds
}

// Cell returns a copy of the cell at p. p must be in bounds.
func (g *Grid) Cell(p Point) Cell {
	return g.cells[g.index(p)]
}

// ID returns the owner of the cell at p. p must be in bounds.
func (g *Grid) ID(p Point) int {
	return g.cells[g.index(p)].ID
}

// IDAt implements Labels.
func (g *Grid) IDAt(x, y int) int {
	return g.cells[y*g.size.X+x].ID
}

// IDs returns the id matrix, one slice per row (fixed y).
func (g *Grid) IDs() [][]int {
	return matrix(g)
}

// Unassigned returns the number of cells with id 0.
func (g *Grid) Unassigned() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].ID == 0 {
			n++
		}
	}
	return n
}

// claim applies Claim to the cell at p.
func (g *Grid) claim(p Point, source Cell) bool {
	return Claim(&g.cells[g.index(p)], source)
}

// matrix copies the ids of any Labels into a row-major matrix.
func matrix(l Labels) [][]int {
	size := l.Size()
	data := make([]int, size.X*size.Y)
	rows := make([][]int, size.Y)
	for y := range size.Y {
		rows[y] = data[y*size.X : (y+1)*size.X : (y+1)*size.X]
		for x := range size.X {
			rows[y][x] = l.IDAt(x, y)
		}
	}
	return rows
}
