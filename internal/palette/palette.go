// Package palette generates display colors for seed regions.
package palette

import (
	"image/color"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness ranges. Each color draws a value uniformly from
// [base, base+jitter).
const (
	saturationBase   = 0.9
	saturationJitter = 0.1
	lightnessBase    = 0.5
	lightnessJitter  = 0.1
)

// Background is the color of unassigned cells.
var Background = color.RGBA{A: 0xff}

// Generate returns n opaque colors with hues evenly spaced around the color
// wheel. Color i has hue i*360/n. Saturation and lightness are jittered with
// rng so neighboring hues stay distinguishable; a nil rng is seeded from the
// clock.
func Generate(n int, rng *rand.Rand) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	colors := make([]color.RGBA, n)
	step := 360.0 / float64(n)
	for i := range colors {
		h := float64(i) * step
		s := saturationBase + rng.Float64()*saturationJitter
		l := lightnessBase + rng.Float64()*lightnessJitter

		r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return colors
}

// Lookup returns the color for a cell id: Background for 0, colors[id-1]
// otherwise. ok is false when id has no palette entry.
func Lookup(colors []color.RGBA, id int) (c color.RGBA, ok bool) {
	if id == 0 {
		return Background, true
	}
	if id < 0 || id > len(colors) {
		return Background, false
	}
	return colors[id-1], true
}
