package order

import (
	"fmt"
	"sync"
	"time"
)

// NumberGenerator produces external order numbers derived from submission
// time. Numbers are strictly monotonic and unique even when submissions land
// on the same millisecond: a three-digit sequence disambiguates, and the clock
// reading is bumped forward if the sequence would overflow.
//
// Safe for concurrent use. One generator per process is enough.
type NumberGenerator struct {
	mu        sync.Mutex
	lastMilli int64
	sequence  int64
}

// NewNumberGenerator creates an order number generator.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// Next returns the order number for a submission at the given instant.
func (g *NumberGenerator) Next(now time.Time) string {
	milli := now.UnixMilli()

	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case milli > g.lastMilli:
		g.lastMilli = milli
		g.sequence = 0
	case g.sequence < 999:
		g.sequence++
	default:
		g.lastMilli++
		g.sequence = 0
	}

	return fmt.Sprintf("%d%03d", g.lastMilli, g.sequence)
}
