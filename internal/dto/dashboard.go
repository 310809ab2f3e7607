package dto

import (
	"time"

	"shopdash/internal/domain"
)

// OrderResponse is the wire shape of one stored order. Field names follow
// the upstream platform's snake_case payloads so the dashboard can treat
// webhook payloads and API responses uniformly.
type OrderResponse struct {
	StoreKey   uint64    `json:"store_key"`
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	TotalPrice string    `json:"total_price"`
	Product    string    `json:"product,omitempty"`
	Date       string    `json:"date,omitempty"`
	Status     string    `json:"status,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		StoreKey:   o.ID,
		ID:         o.ExternalID,
		Email:      o.Email,
		TotalPrice: o.TotalPrice,
		Product:    o.Product,
		Date:       o.Date,
		Status:     o.Status,
		ReceivedAt: o.CreatedAt,
	}
}

type FeedResponse struct {
	TotalOrders int             `json:"total_orders"`
	Orders      []OrderResponse `json:"orders"`
}

type TableResponse struct {
	Total  int             `json:"total"`
	Orders []OrderResponse `json:"orders"`
}

type SalesPoint struct {
	Time        string  `json:"time"`
	DisplayTime string  `json:"display_time"`
	Revenue     float64 `json:"revenue"`
	OrderCount  int     `json:"order_count"`
}

type SalesSummaryResponse struct {
	View          string       `json:"view"`
	Points        []SalesPoint `json:"points"`
	TotalRevenue  float64      `json:"total_revenue"`
	TotalOrders   int          `json:"total_orders"`
	AvgOrderValue float64      `json:"avg_order_value"`
}
