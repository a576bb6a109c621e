package voronoi

// Version information
const (
	// Version is the current version of the module.
	Version = "0.1.0"
)
