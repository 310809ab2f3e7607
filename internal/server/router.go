package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shopdash/internal/dashboard"
	webhookctrl "shopdash/internal/webhook/controller"
)

func NewRouter(webhookCtrl *webhookctrl.WebhookController, dash *dashboard.Module, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Post("/webhooks/shopify", instrument("webhook", webhookCtrl.HandleOrderWebhook))

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", instrument("orders_table", dash.Controller.HandleTable))
		r.Get("/orders/feed", instrument("orders_feed", dash.Controller.HandleFeed))
		// The stream stays open for the life of the client; duration
		// histograms would only record disconnects.
		r.Get("/orders/stream", dash.Streamer.HandleStream)
		r.Get("/sales/summary", instrument("sales_summary", dash.Controller.HandleSalesSummary))
	})

	r.Get("/health", instrument("health", handleHealth))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
