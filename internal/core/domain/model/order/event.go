package order

import "fmt"

// EventType distinguishes the two merchant-facing notifications. The numeric
// values are part of the wire format consumed by the merchant dashboard.
type EventType int

const (
	// EventNewOrder announces a freshly paid order.
	EventNewOrder EventType = 1

	// EventReminder relays a customer's "hurry up" request.
	EventReminder EventType = 2
)

// Event is the payload broadcast to all connected merchant observers when a
// lifecycle transition requires it. Delivery is best-effort and asynchronous:
// the transition succeeds regardless of whether any observer receives it.
type Event struct {
	Type    EventType `json:"type"`
	OrderID string    `json:"orderId"`
	Content string    `json:"content"`
}

// NewOrderEvent builds the notification for a successful payment.
func NewOrderEvent(o *Order) Event {
	return Event{
		Type:    EventNewOrder,
		OrderID: o.ID().String(),
		Content: fmt.Sprintf("order number: %s", o.Number()),
	}
}

// ReminderEvent builds the notification for a customer reminder.
func ReminderEvent(o *Order) Event {
	return Event{
		Type:    EventReminder,
		OrderID: o.ID().String(),
		Content: fmt.Sprintf("order number: %s", o.Number()),
	}
}
