package kafka

import "time"

type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
)

const TopicOrderEvents = "tunitest.order.events"

// OrderEvent is published after an order record is persisted.
type OrderEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	BookIDs    []string  `json:"book_ids"`
	Timestamp  time.Time `json:"timestamp"`
}
