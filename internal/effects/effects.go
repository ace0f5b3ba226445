// Package effects produces the parameters of the decorative backdrops:
// floating bubbles and the animated gradient wave. Nothing here holds state;
// templates turn the values into inline CSS.
package effects

import (
	"math"
	"math/rand/v2"
)

// DefaultBubbleCount is the number of bubbles drawn behind a page.
const DefaultBubbleCount = 20

// Bubble is one rising circle.
type Bubble struct {
	ID       int
	Size     float64 // px, 20-60
	X        float64 // percent of viewport width, 0-100
	Delay    float64 // seconds, 0-5
	Duration float64 // seconds, 15-25
	Drift    float64 // horizontal sway at the top of the rise, px
}

// Bubbles returns n bubbles drawn from rng.
func Bubbles(n int, rng *rand.Rand) []Bubble {
	if n <= 0 {
		return nil
	}
	out := make([]Bubble, n)
	for i := range out {
		out[i] = Bubble{
			ID:       i,
			Size:     rng.Float64()*40 + 20,
			X:        rng.Float64() * 100,
			Delay:    rng.Float64() * 5,
			Duration: rng.Float64()*10 + 15,
			Drift:    math.Sin(float64(i)) * 100,
		}
	}
	return out
}

// Wave holds the fixed parameters of the gradient wave band.
type Wave struct {
	GradientSeconds float64 // background-position cycle, linear
	SwellSeconds    float64 // translate/scale cycle, ease-in-out
	SwellScale      float64 // peak scaleY
	Path            string  // SVG path in a 1200x120 viewBox
	Fill            string
}

// DefaultWave returns the wave used on every page that carries one.
func DefaultWave() Wave {
	return Wave{
		GradientSeconds: 8,
		SwellSeconds:    6,
		SwellScale:      1.2,
		Path:            "M0,60 C200,20 400,100 600,60 C800,20 1000,100 1200,60 L1200,120 L0,120 Z",
		Fill:            "rgba(0,188,212,0.3)",
	}
}
