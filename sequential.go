package voronoi

import "context"

// ctxCheckInterval is how many queue pops pass between context checks.
const ctxCheckInterval = 4096

// Sequential is the single-threaded multi-source flood fill.
//
// It is exact and deterministic: the queue is FIFO and a contested cell
// changes owner only when the new seed is strictly closer, so repeated runs
// on the same input produce the same labeling, ties included.
type Sequential struct {
	// Snapshot, if set, is called with index 0 before propagation and again
	// each time the popped cell's owner differs from the previous pop.
	Snapshot SnapshotFunc
}

// Fill labels every cell of g reachable from a seed.
//
// g must come from NewGrid and not have been filled before. Fill returns
// early only on context cancellation or snapshot failure.
func (e *Sequential) Fill(ctx context.Context, g *Grid) (Stats, error) {
	var stats Stats

	queue := make([]Point, 0, g.Len())
	queue = append(queue, g.seeds...)

	if err := snapshot(e.Snapshot, 0, g, &stats); err != nil {
		return stats, err
	}

	next := 1
	lastID := 1
	for head := 0; head < len(queue); head++ {
		if head%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}

		p := queue[head]
		current := g.Cell(p)
		stats.Visits++

		if e.Snapshot != nil && current.ID != lastID {
			if err := snapshot(e.Snapshot, next, g, &stats); err != nil {
				return stats, err
			}
			next++
			lastID = current.ID
		}

		for _, d := range Directions {
			q, ok := p.Neighbor(d.X, d.Y, 1, g.size)
			if !ok {
				continue
			}
			prev := g.ID(q)
			if g.claim(q, current) {
				stats.record(prev)
				queue = append(queue, q)
			}
		}

		// Reclaim consumed queue space once the head passes half the buffer.
		if head > 1<<16 && head > len(queue)/2 {
			queue = append(queue[:0], queue[head+1:]...)
			head = -1
		}
	}

	Logger().Info("sequential fill complete", "size", g.size, "seeds", len(g.seeds), "stats", stats)
	return stats, nil
}
