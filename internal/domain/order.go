package domain

import "time"

// Order is an upstream commerce platform order as held in the local store.
// ExternalID is the platform's own identifier and the correlation key for
// webhook events; ID is assigned by the store on insert and is the only
// handle for edits and deletes.
type Order struct {
	ID         uint64
	ExternalID string
	Email      string
	// TotalPrice is a decimal amount carried as text. It is never parsed
	// into a float on the write path; only the sales summary parses it.
	TotalPrice string
	Product    string
	// Date is the ISO-8601 creation timestamp as reported upstream. May
	// be empty when the platform omitted it.
	Date      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	OrderStatusPending = "pending"
	OrderStatusUpdated = "updated"
)

// OccurredAt returns the upstream creation time when the order carries a
// parseable one, otherwise the store-side insertion time. Feed ordering and
// sales bucketing both key off this.
func (o Order) OccurredAt() time.Time {
	if o.Date != "" {
		if t, err := time.Parse(time.RFC3339, o.Date); err == nil {
			return t
		}
	}
	return o.CreatedAt
}
