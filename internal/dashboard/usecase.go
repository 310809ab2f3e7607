package dashboard

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"shopdash/internal/domain"
	"shopdash/internal/dto"
	apperrors "shopdash/internal/errors"
)

const feedSize = 20

type OrderReader interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type TableQuery struct {
	Search string
	Status string
	SortBy string
	Dir    string
}

// QueryUseCase derives the three dashboard views from the current order set.
// All three are pure projections; nothing here writes.
type QueryUseCase struct {
	orders OrderReader
	now    func() time.Time
}

func NewQueryUseCase(orders OrderReader) *QueryUseCase {
	return &QueryUseCase{
		orders: orders,
		now:    time.Now,
	}
}

// Feed returns the newest orders first, capped to the feed size, together
// with the total order count.
func (uc *QueryUseCase) Feed(ctx context.Context) (*dto.FeedResponse, error) {
	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OccurredAt().After(orders[j].OccurredAt())
	})

	recent := orders
	if len(recent) > feedSize {
		recent = recent[:feedSize]
	}

	resp := &dto.FeedResponse{
		TotalOrders: len(orders),
		Orders:      make([]dto.OrderResponse, len(recent)),
	}
	for i, order := range recent {
		resp.Orders[i] = dto.NewOrderResponse(order)
	}
	return resp, nil
}

// Table returns the full order set filtered and sorted for the table view.
func (uc *QueryUseCase) Table(ctx context.Context, query TableQuery) (*dto.TableResponse, error) {
	if err := validateTableQuery(query); err != nil {
		return nil, err
	}

	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0:0]
	for _, order := range orders {
		if query.Status != "" && order.Status != query.Status {
			continue
		}
		if query.Search != "" && !matchesSearch(order, query.Search) {
			continue
		}
		filtered = append(filtered, order)
	}

	sortOrders(filtered, query.SortBy, query.Dir)

	resp := &dto.TableResponse{
		Total:  len(filtered),
		Orders: make([]dto.OrderResponse, len(filtered)),
	}
	for i, order := range filtered {
		resp.Orders[i] = dto.NewOrderResponse(order)
	}
	return resp, nil
}

// SalesSummary buckets revenue and order counts over the trailing window:
// 24 one-hour buckets for the hourly view, 7 one-day buckets for the daily
// view.
func (uc *QueryUseCase) SalesSummary(ctx context.Context, view string) (*dto.SalesSummaryResponse, error) {
	intervals, intervalLen, err := viewWindow(view)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	resp := &dto.SalesSummaryResponse{
		View:   view,
		Points: make([]dto.SalesPoint, 0, intervals),
	}

	for i := intervals - 1; i >= 0; i-- {
		start := now.Add(-time.Duration(i) * intervalLen)
		end := start.Add(intervalLen)

		var revenue float64
		var count int
		for _, order := range orders {
			at := order.OccurredAt()
			if at.Before(start) || !at.Before(end) {
				continue
			}
			revenue += parsePrice(order.TotalPrice)
			count++
		}

		resp.Points = append(resp.Points, dto.SalesPoint{
			Time:        start.UTC().Format(time.RFC3339),
			DisplayTime: displayTime(start, view),
			Revenue:     math.Round(revenue*100) / 100,
			OrderCount:  count,
		})
		resp.TotalRevenue += revenue
		resp.TotalOrders += count
	}

	resp.TotalRevenue = math.Round(resp.TotalRevenue*100) / 100
	if resp.TotalOrders > 0 {
		resp.AvgOrderValue = math.Round(resp.TotalRevenue/float64(resp.TotalOrders)*100) / 100
	}
	return resp, nil
}

func validateTableQuery(query TableQuery) error {
	switch query.SortBy {
	case "", "date", "id", "email", "total_price":
	default:
		return apperrors.NewValidationError("invalid sort field", apperrors.ValidationDetail{
			Field:   "sort",
			Message: "sort must be one of date, id, email, total_price",
		})
	}
	switch query.Dir {
	case "", "asc", "desc":
	default:
		return apperrors.NewValidationError("invalid sort direction", apperrors.ValidationDetail{
			Field:   "dir",
			Message: "dir must be asc or desc",
		})
	}
	return nil
}

func viewWindow(view string) (int, time.Duration, error) {
	switch view {
	case "hourly":
		return 24, time.Hour, nil
	case "daily":
		return 7, 24 * time.Hour, nil
	default:
		return 0, 0, apperrors.NewValidationError("invalid view", apperrors.ValidationDetail{
			Field:   "view",
			Message: "view must be hourly or daily",
		})
	}
}

func matchesSearch(order domain.Order, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{order.ExternalID, order.Email, order.Product} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func sortOrders(orders []domain.Order, sortBy, dir string) {
	if sortBy == "" {
		sortBy = "date"
	}
	desc := dir != "asc"

	less := func(i, j int) bool { return orders[i].OccurredAt().Before(orders[j].OccurredAt()) }
	switch sortBy {
	case "id":
		less = func(i, j int) bool { return orders[i].ExternalID < orders[j].ExternalID }
	case "email":
		less = func(i, j int) bool { return orders[i].Email < orders[j].Email }
	case "total_price":
		less = func(i, j int) bool { return parsePrice(orders[i].TotalPrice) < parsePrice(orders[j].TotalPrice) }
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if desc {
			return less(j, i)
		}
		return less(i, j)
	})
}

// parsePrice is the only place a total_price leaves its text form. A value
// that fails to parse counts as zero rather than poisoning the whole sum.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func displayTime(t time.Time, view string) string {
	if view == "hourly" {
		return t.Format("15:04")
	}
	return t.Format("Jan 2")
}
