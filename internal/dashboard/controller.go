package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"shopdash/internal/dto"
	apperrors "shopdash/internal/errors"
)

type Queries interface {
	Feed(ctx context.Context) (*dto.FeedResponse, error)
	Table(ctx context.Context, query TableQuery) (*dto.TableResponse, error)
	SalesSummary(ctx context.Context, view string) (*dto.SalesSummaryResponse, error)
}

type Controller struct {
	useCase Queries
	logger  *zap.Logger
}

func NewController(useCase Queries, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleFeed(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.Feed(r.Context())
	if err != nil {
		c.handleError(w, "feed", err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleTable(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := TableQuery{
		Search: params.Get("q"),
		Status: params.Get("status"),
		SortBy: params.Get("sort"),
		Dir:    params.Get("dir"),
	}

	resp, err := c.useCase.Table(r.Context(), query)
	if err != nil {
		c.handleError(w, "table", err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleSalesSummary(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "hourly"
	}

	resp, err := c.useCase.SalesSummary(r.Context(), view)
	if err != nil {
		c.handleError(w, "sales summary", err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) handleError(w http.ResponseWriter, view string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	c.logger.Error("dashboard query failed", zap.String("view", view), zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
