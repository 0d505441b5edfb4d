package ports

import "github.com/likecate/sky-take-out/internal/core/domain/model/order"

// Notifier fans an event out to every currently connected merchant observer.
// Broadcast is fire-and-forget: it returns immediately, delivery happens
// asynchronously, and a slow or disconnected observer never blocks the
// triggering transition or the other observers.
type Notifier interface {
	Broadcast(event order.Event)
}
