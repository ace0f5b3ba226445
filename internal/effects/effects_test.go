package effects

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBubblesWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bubbles := Bubbles(200, rng)
	if len(bubbles) != 200 {
		t.Fatalf("expected 200 bubbles, got %d", len(bubbles))
	}
	for _, b := range bubbles {
		if b.Size < 20 || b.Size >= 60 {
			t.Errorf("bubble %d size %v out of range", b.ID, b.Size)
		}
		if b.X < 0 || b.X >= 100 {
			t.Errorf("bubble %d x %v out of range", b.ID, b.X)
		}
		if b.Delay < 0 || b.Delay >= 5 {
			t.Errorf("bubble %d delay %v out of range", b.ID, b.Delay)
		}
		if b.Duration < 15 || b.Duration >= 25 {
			t.Errorf("bubble %d duration %v out of range", b.ID, b.Duration)
		}
		if want := math.Sin(float64(b.ID)) * 100; b.Drift != want {
			t.Errorf("bubble %d drift %v, want %v", b.ID, b.Drift, want)
		}
	}
}

func TestBubblesReproducible(t *testing.T) {
	a := Bubbles(DefaultBubbleCount, rand.New(rand.NewPCG(7, 7)))
	b := Bubbles(DefaultBubbleCount, rand.New(rand.NewPCG(7, 7)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different bubbles (-a +b):\n%s", diff)
	}
}

func TestBubblesEmpty(t *testing.T) {
	if got := Bubbles(0, rand.New(rand.NewPCG(1, 1))); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
