package chat

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Responder produces the assistant's reply and how long to "think" first.
type Responder interface {
	Respond(prompt string) string
	Delay() time.Duration
}

// CannedResponder picks uniformly from a fixed list of replies and waits a
// uniformly distributed delay in [MinDelay, MinDelay+Jitter).
type CannedResponder struct {
	responses []string
	minDelay  time.Duration
	jitter    time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCannedResponder creates a responder. A nil rng is seeded from the
// runtime; an empty responses list falls back to CannedResponses.
func NewCannedResponder(responses []string, minDelay, jitter time.Duration, rng *rand.Rand) *CannedResponder {
	if len(responses) == 0 {
		responses = CannedResponses
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &CannedResponder{
		responses: responses,
		minDelay:  max(minDelay, 0),
		jitter:    max(jitter, 0),
		rng:       rng,
	}
}

// Respond ignores the prompt.
func (c *CannedResponder) Respond(string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.responses[c.rng.IntN(len(c.responses))]
}

func (c *CannedResponder) Delay() time.Duration {
	if c.jitter == 0 {
		return c.minDelay
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minDelay + time.Duration(c.rng.Int64N(int64(c.jitter)))
}
