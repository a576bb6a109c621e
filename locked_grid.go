package voronoi

import "sync"

// lockedCell pairs a cell with its own guard.
type lockedCell struct {
	mu   sync.Mutex
	cell Cell
}

// LockedGrid is a Grid whose cells are individually mutex-protected.
//
// Two goroutines may touch different cells concurrently; access to the same
// cell is serialized. No operation ever holds two cell locks at once, so
// there is no lock ordering to respect.
type LockedGrid struct {
	size  Point
	cells []lockedCell
	seeds []Point
}

// NewLockedGrid allocates a per-cell locked grid with seed cells labeled.
// Validation matches NewGrid.
func NewLockedGrid(size Point, seeds []Point) (*LockedGrid, error) {
	if err := validate(size, seeds); err != nil {
		return nil, err
	}

	g := &LockedGrid{
		size:  size,
		cells: make([]lockedCell, size.X*size.Y),
		seeds: append([]Point(nil), seeds...),
	}
	for i := range g.cells {
		g.cells[i].cell.Position = Point{X: i % size.X, Y: i / size.X}
	}
	for i, s := range seeds {
		c := &g.cells[s.Y*size.X+s.X].cell
		c.ID = i + 1
		c.Seed = s
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *LockedGrid) Size() Point {
	return g.size
}

// Len returns the number of cells.
func (g *LockedGrid) Len() int {
	return len(g.cells)
}

// Seeds returns the seed coordinates in id order.
// The returned slice should not be modified.
func (g *LockedGrid) Seeds() []Point {
	return g.seeds
}

// Load returns a copy of the cell at p, taken under its lock.
func (g *LockedGrid) Load(p Point) Cell {
	lc := &g.cells[p.Y*g.size.X+p.X]
	lc.mu.Lock()
	c := lc.cell
	lc.mu.Unlock()
	return c
}

// Update runs fn on the cell at p while holding that cell's lock and
// returns fn's result. fn must not touch other cells of g.
func (g *LockedGrid) Update(p Point, fn func(*Cell) bool) bool {
	lc := &g.cells[p.Y*g.size.X+p.X]
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return fn(&lc.cell)
}

// IDAt implements Labels. It is safe to call while a fill is running; the
// result is a consistent read of that single cell only.
func (g *LockedGrid) IDAt(x, y int) int {
	lc := &g.cells[y*g.size.X+x]
	lc.mu.Lock()
	id := lc.cell.ID
	lc.mu.Unlock()
	return id
}

// IDs returns the id matrix, one slice per row.
func (g *LockedGrid) IDs() [][]int {
	return matrix(g)
}

// Freeze copies the current state into an unsynchronized Grid.
func (g *LockedGrid) Freeze() *Grid {
	out := &Grid{
		size:  g.size,
		cells: make([]Cell, len(g.cells)),
		seeds: append([]Point(nil), g.seeds...),
	}
	for i := range g.cells {
		lc := &g.cells[i]
		lc.mu.Lock()
		out.cells[i] = lc.cell
		lc.mu.Unlock()
	}
	return out
}
