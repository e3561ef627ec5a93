package ai

import (
	"context"

	"golang.org/x/sync/singleflight"
)

const prewarmPrompt = "Warm up. Please reply with OK in one word."

// Prewarmer issues a speculative warm-up call so the first real generation
// is faster. Concurrent callers share a single in-flight call through the
// fixed "prewarm" key; nobody is required to read the result.
type Prewarmer struct {
	group singleflight.Group
}

// Prewarm fires the warm-up prompt and returns the shared result channel.
// Failures only matter to callers who choose to look.
func (p *Prewarmer) Prewarm(ctx context.Context, g Generator) <-chan singleflight.Result {
	return p.group.DoChan("prewarm", func() (interface{}, error) {
		if g == nil {
			return "", ErrUnavailable
		}
		return g.Complete(ctx, prewarmPrompt)
	})
}
