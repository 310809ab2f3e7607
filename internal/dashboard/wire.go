package dashboard

import (
	"go.uber.org/zap"

	"shopdash/internal/changefeed"
)

type Module struct {
	Controller *Controller
	Streamer   *Streamer
}

func NewModule(orders OrderReader, hub *changefeed.Hub, logger *zap.Logger) *Module {
	queryUC := NewQueryUseCase(orders)

	return &Module{
		Controller: NewController(queryUC, logger),
		Streamer:   NewStreamer(hub, logger),
	}
}
