package notification

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"shopdash/internal/changefeed"
	"shopdash/internal/dto"
)

func TestHandleEvent_AnnouncesNewOrder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewHandler(zap.New(core))

	event := changefeed.Event{
		Type: changefeed.OrderCreated,
		Order: dto.OrderResponse{
			ID:         "1001",
			Email:      "a@b.com",
			TotalPrice: "19.99",
			Product:    "Shirt",
		},
	}
	value, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), []byte("1001"), value))

	entries := logs.FilterMessage("new order received").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "1001", entries[0].ContextMap()["order_id"])
	assert.Equal(t, "19.99", entries[0].ContextMap()["total_price"])
}

func TestHandleEvent_MalformedPayloadIsAnError(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	handler := NewHandler(zap.New(core))

	err := handler.HandleEvent(context.Background(), []byte("k"), []byte("not json"))
	assert.Error(t, err)
}

func TestHandleEvent_DeletionLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewHandler(zap.New(core))

	event := changefeed.Event{
		Type:  changefeed.OrderDeleted,
		Order: dto.OrderResponse{ID: "2002"},
	}
	value, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), []byte("2002"), value))
	assert.Len(t, logs.FilterMessage("order removed").All(), 1)
}
