package changefeed

import (
	"context"
	"time"

	"shopdash/internal/dto"
)

type EventType string

const (
	OrderCreated EventType = "order.created"
	OrderUpdated EventType = "order.updated"
	OrderDeleted EventType = "order.deleted"
)

// Event is one observed mutation of the order store. Order carries the
// record as it looked after the mutation; for deletions it is the record
// that was removed.
type Event struct {
	Type  EventType         `json:"type"`
	Order dto.OrderResponse `json:"order"`
	At    time.Time         `json:"at"`
}

// Publisher delivers change events to whoever is watching the store.
// Implementations must not block on slow consumers.
type Publisher interface {
	PublishChange(ctx context.Context, event Event) error
}
