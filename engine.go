package voronoi

import (
	"fmt"
	"log/slog"
)

// SnapshotFunc receives intermediate grid states when debug snapshots are
// enabled. index starts at 0 for the sequential engine and at 1 for the
// jump-flood engine, and increases by one per call. A non-nil error aborts
// the fill.
type SnapshotFunc func(index int, labels Labels) error

// Stats summarizes one fill.
type Stats struct {
	// Rounds is the number of jump-flood rounds run, 0 for sequential fills.
	Rounds int

	// Visits counts queue pops.
	Visits int

	// Claims counts unassigned cells taken by a seed.
	Claims int

	// Reassignments counts owned cells moved to a strictly closer seed.
	Reassignments int

	// Snapshots counts SnapshotFunc calls.
	Snapshots int
}

func (s *Stats) add(o Stats) {
	s.Visits += o.Visits
	s.Claims += o.Claims
	s.Reassignments += o.Reassignments
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rounds", s.Rounds),
		slog.Int("visits", s.Visits),
		slog.Int("claims", s.Claims),
		slog.Int("reassignments", s.Reassignments),
		slog.Int("snapshots", s.Snapshots),
	)
}

// snapshot invokes fn if set and counts the call.
func snapshot(fn SnapshotFunc, index int, labels Labels, stats *Stats) error {
	if fn == nil {
		return nil
	}
	if err := fn(index, labels); err != nil {
		return fmt.Errorf("voronoi: snapshot %d: %w", index, err)
	}
	stats.Snapshots++
	Logger().Debug("snapshot written", "index", index)
	return nil
}

// record counts the outcome of a successful Claim on a cell whose previous
// id was prev.
func (s *Stats) record(prev int) {
	if prev == 0 {
		s.Claims++
	} else {
		s.Reassignments++
	}
}
