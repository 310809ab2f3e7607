package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopdash/internal/changefeed"
	"shopdash/internal/domain"
	"shopdash/internal/dto"
	apperrors "shopdash/internal/errors"
)

// Topics the upstream platform tags order lifecycle notifications with.
const (
	TopicOrderCreated = "orders/create"
	TopicOrderEdited  = "orders/edited"
	TopicOrderDeleted = "orders/delete"
)

type OrderRepository interface {
	FindByExternalID(ctx context.Context, externalID string) (*domain.Order, error)
	SaveOrder(ctx context.Context, order *domain.Order) (uint64, error)
	EditOrder(ctx context.Context, id uint64, order domain.Order) error
	DeleteOrder(ctx context.Context, id uint64) error
}

// ProcessEventUseCase interprets one authenticated notification and applies
// at most one mutation to the order store. Skips are outcomes, not errors;
// an error return means a store call failed and the caller should surface a
// retryable failure to the upstream platform.
type ProcessEventUseCase struct {
	orderRepo OrderRepository
	feed      changefeed.Publisher
	logger    *zap.Logger
}

func NewProcessEventUseCase(orderRepo OrderRepository, feed changefeed.Publisher, logger *zap.Logger) *ProcessEventUseCase {
	return &ProcessEventUseCase{
		orderRepo: orderRepo,
		feed:      feed,
		logger:    logger,
	}
}

func (uc *ProcessEventUseCase) Process(ctx context.Context, topic string, payload dto.OrderPayload) (*dto.ProcessResult, error) {
	switch topic {
	case TopicOrderCreated:
		return uc.createOrder(ctx, payload)
	case TopicOrderEdited:
		return uc.editOrder(ctx, payload)
	case TopicOrderDeleted:
		return uc.deleteOrder(ctx, payload)
	default:
		return skipped(dto.ReasonUnknownTopic), nil
	}
}

func (uc *ProcessEventUseCase) createOrder(ctx context.Context, payload dto.OrderPayload) (*dto.ProcessResult, error) {
	if !hasOrderFields(payload) {
		return skipped(dto.ReasonIncompletePayload), nil
	}

	// Creation is re-deliverable: an existing record with this external id
	// means the insert already landed, so the retry is acknowledged as a
	// no-op instead of producing a duplicate.
	existing, err := uc.orderRepo.FindByExternalID(ctx, string(payload.ID))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return nil, err
		}
	}
	if existing != nil {
		return skipped(dto.ReasonAlreadyExists), nil
	}

	order := domain.Order{
		ExternalID: string(payload.ID),
		Email:      payload.Email,
		TotalPrice: string(payload.TotalPrice),
		Product:    joinLineItemTitles(payload),
		Date:       payload.CreatedAt,
		Status:     domain.OrderStatusPending,
	}

	id, err := uc.orderRepo.SaveOrder(ctx, &order)
	if err != nil {
		return nil, err
	}
	order.ID = id
	order.CreatedAt = time.Now().UTC()

	uc.publish(ctx, changefeed.OrderCreated, order)
	return applied(), nil
}

func (uc *ProcessEventUseCase) editOrder(ctx context.Context, payload dto.OrderPayload) (*dto.ProcessResult, error) {
	if !hasOrderFields(payload) {
		return skipped(dto.ReasonIncompletePayload), nil
	}

	existing, err := uc.orderRepo.FindByExternalID(ctx, string(payload.ID))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return skipped(dto.ReasonOrderMissing), nil
		}
		return nil, err
	}

	// The incoming event never carries a status; keep whatever the record
	// has and only fall back when it was never set.
	status := existing.Status
	if status == "" {
		status = domain.OrderStatusUpdated
	}

	updated := domain.Order{
		ID:         existing.ID,
		ExternalID: string(payload.ID),
		Email:      payload.Email,
		TotalPrice: string(payload.TotalPrice),
		Product:    joinLineItemTitles(payload),
		Date:       payload.CreatedAt,
		Status:     status,
		CreatedAt:  existing.CreatedAt,
	}

	if err := uc.orderRepo.EditOrder(ctx, existing.ID, updated); err != nil {
		return nil, err
	}

	uc.publish(ctx, changefeed.OrderUpdated, updated)
	return applied(), nil
}

func (uc *ProcessEventUseCase) deleteOrder(ctx context.Context, payload dto.OrderPayload) (*dto.ProcessResult, error) {
	if payload.ID == "" {
		return skipped(dto.ReasonIncompletePayload), nil
	}

	existing, err := uc.orderRepo.FindByExternalID(ctx, string(payload.ID))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return skipped(dto.ReasonOrderMissing), nil
		}
		return nil, err
	}

	if err := uc.orderRepo.DeleteOrder(ctx, existing.ID); err != nil {
		// Lost a race with a concurrent delete; the record is gone either way.
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return skipped(dto.ReasonOrderMissing), nil
		}
		return nil, err
	}

	uc.publish(ctx, changefeed.OrderDeleted, *existing)
	return applied(), nil
}

func (uc *ProcessEventUseCase) publish(ctx context.Context, eventType changefeed.EventType, order domain.Order) {
	event := changefeed.Event{
		Type:  eventType,
		Order: dto.NewOrderResponse(order),
		At:    time.Now().UTC(),
	}
	if err := uc.feed.PublishChange(ctx, event); err != nil {
		uc.logger.Warn("publishing change event",
			zap.String("type", string(eventType)),
			zap.String("external_id", order.ExternalID),
			zap.Error(err),
		)
	}
}

// hasOrderFields enforces the richer validation variant uniformly for
// create and edit: id, email, total_price, line_items and created_at must
// all be present.
func hasOrderFields(payload dto.OrderPayload) bool {
	return payload.ID != "" &&
		payload.Email != "" &&
		payload.TotalPrice != "" &&
		payload.HasLineItems() &&
		payload.CreatedAt != ""
}

// joinLineItemTitles concatenates the line-item titles with ", ". A
// line_items value that is not a sequence yields an empty string.
func joinLineItemTitles(payload dto.OrderPayload) string {
	items, ok := payload.ParseLineItems()
	if !ok {
		return ""
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return strings.Join(titles, ", ")
}

func applied() *dto.ProcessResult {
	return &dto.ProcessResult{Disposition: dto.EventApplied}
}

func skipped(reason dto.SkipReason) *dto.ProcessResult {
	return &dto.ProcessResult{Disposition: dto.EventSkipped, Reason: reason}
}
