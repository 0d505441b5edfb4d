package order_test

import (
	"sync"
	"testing"
	"time"

	"github.com/likecate/sky-take-out/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberGenerator_Next(t *testing.T) {
	t.Run("derives the number from the submission millisecond", func(t *testing.T) {
		g := order.NewNumberGenerator()
		now := time.UnixMilli(1693526400000)

		number := g.Next(now)

		assert.Equal(t, "1693526400000000", number)
	})

	t.Run("same millisecond yields distinct ascending numbers", func(t *testing.T) {
		g := order.NewNumberGenerator()
		now := time.UnixMilli(1693526400000)

		first := g.Next(now)
		second := g.Next(now)
		third := g.Next(now)

		assert.Equal(t, "1693526400000000", first)
		assert.Equal(t, "1693526400000001", second)
		assert.Equal(t, "1693526400000002", third)
	})

	t.Run("sequence overflow bumps the clock reading", func(t *testing.T) {
		g := order.NewNumberGenerator()
		now := time.UnixMilli(1693526400000)

		last := g.Next(now)
		for range 1000 {
			last = g.Next(now)
		}

		assert.Equal(t, "1693526400001000", last)
	})

	t.Run("concurrent submissions never share a number", func(t *testing.T) {
		g := order.NewNumberGenerator()
		now := time.Now()

		const workers = 8
		const perWorker = 200

		var mu sync.Mutex
		seen := make(map[string]bool, workers*perWorker)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				numbers := make([]string, 0, perWorker)
				for range perWorker {
					numbers = append(numbers, g.Next(now))
				}

				mu.Lock()
				defer mu.Unlock()
				for _, n := range numbers {
					seen[n] = true
				}
			}()
		}
		wg.Wait()

		require.Len(t, seen, workers*perWorker)
	})
}
