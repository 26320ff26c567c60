// Package runid mints monotonic ULIDs used only to correlate log lines
// across one Process call; they are never part of the returned Hit data.
package runid

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Generator mints monotonically increasing correlation ids. It is safe for
// concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a generator seeded from crypto/rand.
func New() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns the next correlation id as a string.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}
