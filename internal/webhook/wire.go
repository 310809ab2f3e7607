package webhook

import (
	"go.uber.org/zap"

	"shopdash/internal/changefeed"
	"shopdash/internal/config"
	"shopdash/internal/webhook/controller"
	"shopdash/internal/webhook/service"
	"shopdash/internal/webhook/usecase"
)

func NewModule(orderRepo usecase.OrderRepository, feed changefeed.Publisher, cfg config.WebhookConfig, logger *zap.Logger) *controller.WebhookController {
	verifier := service.NewSignatureService(cfg.Secret)
	processUC := usecase.NewProcessEventUseCase(orderRepo, feed, logger)

	return controller.NewWebhookController(processUC, verifier, logger)
}
