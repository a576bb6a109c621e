package voronoi

// Cell is the ownership state of one grid position.
//
// ID 0 means unassigned, and Seed is then meaningless. A non-zero ID names
// the seed (1-based, in input order) currently believed nearest, and Seed
// holds that seed's coordinates. Position never changes after the grid is
// built.
type Cell struct {
	ID       int
	Position Point
	Seed     Point
}

// Assigned reports whether the cell has an owner.
func (c Cell) Assigned() bool {
	return c.ID != 0
}

// CloserSeed reports whether the cell's current seed is at least as close
// as candidate. Equal distance keeps the incumbent.
func (c Cell) CloserSeed(candidate Point) bool {
	return c.Position.DistanceSquared(c.Seed) <= c.Position.DistanceSquared(candidate)
}

// Claim decides whether source's owner should take over target and applies
// the change in place. It returns true if target was modified.
//
// An unassigned target is always taken. An owned target is reassigned only
// if source's seed is strictly closer. Claim never writes ID 0.
//
// Claim does no locking; callers holding a Grid use it directly, callers
// holding a LockedGrid run it under the target cell's lock.
func Claim(target *Cell, source Cell) bool {
	if source.ID == 0 || target.ID == source.ID {
		return false
	}
	if target.ID != 0 && target.CloserSeed(source.Seed) {
		return false
	}
	target.ID = source.ID
	target.Seed = source.Seed
	return true
}
