package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopdash/internal/dto"
	"shopdash/internal/metrics"
	"shopdash/internal/webhook/usecase"
)

// Headers the upstream commerce platform sets on every delivery.
const (
	HeaderSignature = "X-Shopify-Hmac-Sha256"
	HeaderTopic     = "X-Shopify-Topic"
)

const maxBodyBytes = 1 << 20 // 1MB

type ProcessEventUseCase interface {
	Process(ctx context.Context, topic string, payload dto.OrderPayload) (*dto.ProcessResult, error)
}

type SignatureVerifier interface {
	Verify(body []byte, header string) bool
}

type WebhookController struct {
	useCase  ProcessEventUseCase
	verifier SignatureVerifier
	logger   *zap.Logger
}

func NewWebhookController(useCase ProcessEventUseCase, verifier SignatureVerifier, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		useCase:  useCase,
		verifier: verifier,
		logger:   logger,
	}
}

// HandleOrderWebhook authenticates one delivery and hands it to the use
// case. Once the signature checks out the platform gets a 200 no matter
// what dispatch decided; only a store failure surfaces as a 5xx so the
// platform's retry kicks in.
func (c *WebhookController) HandleOrderWebhook(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("failed to read webhook body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	// The digest is computed over the exact raw bytes, before any parsing.
	if !c.verifier.Verify(body, r.Header.Get(HeaderSignature)) {
		metrics.WebhookRejectedTotal.Inc()
		logger.Warn("invalid webhook signature")
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid signature"})
		return
	}

	topic := r.Header.Get(HeaderTopic)

	// A body that does not parse is still acknowledged: the payload stays
	// empty and fails validation in every dispatch branch. Rejecting it
	// would just make the platform retry the same malformed body forever.
	var payload dto.OrderPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Debug("unparsable webhook body", zap.String("topic", topic), zap.Error(err))
		payload = dto.OrderPayload{}
	}

	result, err := c.useCase.Process(r.Context(), topic, payload)
	if err != nil {
		metrics.WebhookStoreFailuresTotal.Inc()
		logger.Error("processing webhook event",
			zap.String("topic", topic),
			zap.Error(err),
		)
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	metrics.WebhookEventsTotal.WithLabelValues(topicLabel(topic), string(result.Disposition)).Inc()
	logger.Info("webhook processed",
		zap.String("topic", topic),
		zap.String("disposition", string(result.Disposition)),
		zap.String("reason", string(result.Reason)),
	)

	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// topicLabel folds unrecognized topics into one label value so the metric's
// cardinality stays bounded.
func topicLabel(topic string) string {
	switch topic {
	case usecase.TopicOrderCreated, usecase.TopicOrderEdited, usecase.TopicOrderDeleted:
		return topic
	default:
		return "other"
	}
}

func (c *WebhookController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
