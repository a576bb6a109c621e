package voronoi

import (
	"context"
	"fmt"

	"github.com/gogpu/voronoi/internal/parallel"
)

// JumpFlood is the multi-round parallel fill.
//
// Each round runs one task per seed with a non-empty queue. A task walks its
// queue, pushes the owner of each queued cell to the eight neighbors at the
// round's step distance, and collects the cells it changed plus the cells it
// visited as its queue for the next round. Rounds are separated by a
// barrier. Rounds follow Schedule, then unit-step rounds repeat until one
// changes nothing.
//
// Cells contested by two seeds at exactly equal distance go to whichever
// task writes first, so ties may resolve differently between runs. The
// final state has the same guarantee as Sequential: no cell has a neighbor
// whose owner is strictly closer to it than its own.
type JumpFlood struct {
	// Workers is the pool size. Zero or negative means GOMAXPROCS.
	Workers int

	// Snapshot, if set, is called at the start of every round with the
	// round number (from 1). It may observe writes of no other round.
	Snapshot SnapshotFunc
}

// roundResult is what one seed task hands back at the barrier.
type roundResult struct {
	next  []Point
	stats Stats
}

// Fill labels every cell of g. g must come from NewLockedGrid and not have
// been filled before.
//
// If a task panics, Fill returns an error wrapping ErrWorkerFailed once the
// round's other tasks finish; the grid contents are then unspecified. The
// context is checked between rounds.
func (e *JumpFlood) Fill(ctx context.Context, g *LockedGrid) (Stats, error) {
	var stats Stats

	pool := parallel.NewPool(e.Workers)
	defer pool.Close()

	queues := make([][]Point, len(g.seeds))
	for i, s := range g.seeds {
		queues[i] = []Point{s}
	}

	log := Logger()
	schedule := Schedule(g.size)
	log.Debug("jump flood start", "size", g.size, "seeds", len(g.seeds), "workers", pool.Workers(), "schedule", schedule)

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		step := 1
		if round <= len(schedule) {
			step = schedule[round-1]
		}

		if err := snapshot(e.Snapshot, round, g, &stats); err != nil {
			return stats, err
		}

		results := make([]roundResult, len(queues))
		tasks := make([]parallel.Task, 0, len(queues))
		for i, q := range queues {
			if len(q) == 0 {
				continue
			}
			tasks = append(tasks, func() {
				results[i] = spread(g, q, step)
			})
		}

		if err := pool.Run(tasks); err != nil {
			return stats, fmt.Errorf("%w: round %d: %w", ErrWorkerFailed, round, err)
		}

		var rs Stats
		for i := range results {
			queues[i] = results[i].next
			rs.add(results[i].stats)
		}
		stats.add(rs)
		stats.Rounds = round

		changed := rs.Claims + rs.Reassignments
		log.Debug("round done", "round", round, "step", step, "tasks", len(tasks), "changed", changed)

		if round >= len(schedule) && changed == 0 {
			break
		}
	}

	log.Info("jump flood fill complete", "size", g.size, "seeds", len(g.seeds), "stats", stats)
	return stats, nil
}

// spread runs one seed task for one round.
func spread(g *LockedGrid, queue []Point, step int) roundResult {
	var res roundResult
	seen := make(map[Point]struct{}, len(queue)*2)
	push := func(p Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		res.next = append(res.next, p)
	}

	for _, p := range queue {
		current := g.Load(p)
		res.stats.Visits++
		push(p)

		for _, d := range Directions {
			q, ok := p.Neighbor(d.X, d.Y, step, g.size)
			if !ok {
				continue
			}
			var prev int
			changed := g.Update(q, func(c *Cell) bool {
				prev = c.ID
				return Claim(c, current)
			})
			if changed {
				res.stats.record(prev)
				push(q)
			}
		}
	}
	return res
}
