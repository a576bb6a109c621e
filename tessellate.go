package voronoi

import "context"

// Options selects and configures a fill engine for Tessellate.
type Options struct {
	// Parallel selects JumpFlood instead of Sequential.
	Parallel bool

	// Workers is passed to JumpFlood. Ignored for sequential fills.
	Workers int

	// Snapshot receives intermediate states. Nil disables snapshots.
	Snapshot SnapshotFunc
}

// Tessellate builds a grid of the given size, labels every cell with its
// nearest seed, and returns the finished grid.
//
// Seed i (0-based) gets id i+1. Invalid sizes or seeds are rejected before
// any work starts; see NewGrid.
func Tessellate(ctx context.Context, size Point, seeds []Point, opts Options) (*Grid, Stats, error) {
	if !opts.Parallel {
		g, err := NewGrid(size, seeds)
		if err != nil {
			return nil, Stats{}, err
		}
		e := Sequential{Snapshot: opts.Snapshot}
		stats, err := e.Fill(ctx, g)
		if err != nil {
			return nil, stats, err
		}
		return g, stats, nil
	}

	lg, err := NewLockedGrid(size, seeds)
	if err != nil {
		return nil, Stats{}, err
	}
	e := JumpFlood{Workers: opts.Workers, Snapshot: opts.Snapshot}
	stats, err := e.Fill(ctx, lg)
	if err != nil {
		return nil, stats, err
	}
	return lg.Freeze(), stats, nil
}
