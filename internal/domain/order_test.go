package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_OccurredAt_UsesUpstreamDate(t *testing.T) {
	inserted := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	order := Order{
		Date:      "2024-01-01T00:00:00Z",
		CreatedAt: inserted,
	}

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), order.OccurredAt())
}

func TestOrder_OccurredAt_FallsBackToCreatedAt(t *testing.T) {
	inserted := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, date := range []string{"", "not-a-timestamp"} {
		order := Order{Date: date, CreatedAt: inserted}
		assert.Equal(t, inserted, order.OccurredAt(), "date=%q", date)
	}
}
