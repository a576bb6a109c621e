package voronoi

// Schedule returns the jump-flood step sizes for a grid of the given size:
// one unit step, then max(X, Y)/2 halved until it reaches 0.
//
// For a 16x9 grid this is [1 8 4 2 1]. The first unit step claims the
// seeds' immediate rings, the long steps spread approximate ownership, and
// the final unit step refines borders. JumpFlood keeps running unit steps
// after the schedule until nothing changes, so the schedule only needs to
// be fast, not complete.
func Schedule(size Point) []int {
	steps := []int{1}
	for k := max(size.X, size.Y) / 2; k > 0; k /= 2 {
		steps = append(steps, k)
	}
	return steps
}
