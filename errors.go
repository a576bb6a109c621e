package voronoi

import "errors"

// Grid construction errors.
var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("voronoi: invalid grid size")

	// ErrNoSeeds is returned when a grid is built without seeds.
	ErrNoSeeds = errors.New("voronoi: no seeds")

	// ErrSeedOutOfBounds is returned when a seed lies outside the grid.
	ErrSeedOutOfBounds = errors.New("voronoi: seed out of bounds")

	// ErrDuplicateSeed is returned when two seeds share a coordinate.
	ErrDuplicateSeed = errors.New("voronoi: duplicate seed")
)

// ErrWorkerFailed is returned by JumpFlood.Fill when a round task panicked.
// The grid is left in an unspecified state.
var ErrWorkerFailed = errors.New("voronoi: worker failed")
