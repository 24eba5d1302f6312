package scraper

import (
	"math/rand/v2"
	"time"
)

// defaultUserAgents mirrors a small pool of real browser identities so the
// request stream does not advertise a single client.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.5060.53 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Windows; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/103.0.5060.114 Safari/537.36",
}

// DefaultUserAgents returns a copy of the built-in User-Agent pool.
func DefaultUserAgents() []string {
	return append([]string(nil), defaultUserAgents...)
}

// RandomThrottle draws a uniform delay from [minDelay, maxDelay] and a random
// User-Agent from its pool on every request. It is stateless and safe for
// concurrent use.
type RandomThrottle struct {
	minDelay   time.Duration
	maxDelay   time.Duration
	userAgents []string
}

// NewRandomThrottle builds a RandomThrottle. An empty userAgents slice falls
// back to the default pool; a max below min collapses to a fixed delay.
func NewRandomThrottle(minDelay, maxDelay time.Duration, userAgents []string) *RandomThrottle {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	if len(userAgents) == 0 {
		userAgents = DefaultUserAgents()
	}
	return &RandomThrottle{
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		userAgents: append([]string(nil), userAgents...),
	}
}

// Delay picks the next pre-request pause.
func (t *RandomThrottle) Delay() time.Duration {
	span := t.maxDelay - t.minDelay
	if span <= 0 {
		return t.minDelay
	}
	return t.minDelay + rand.N(span)
}

// UserAgent picks the identity header for the next request.
func (t *RandomThrottle) UserAgent() string {
	return t.userAgents[rand.IntN(len(t.userAgents))]
}
