package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdash/internal/domain"
	apperrors "shopdash/internal/errors"
)

type stubOrderReader struct {
	orders []domain.Order
	err    error
}

func (s *stubOrderReader) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newTestUseCase(orders ...domain.Order) *QueryUseCase {
	uc := NewQueryUseCase(&stubOrderReader{orders: orders})
	uc.now = fixedNow
	return uc
}

func orderAt(ext string, at time.Time, price string) domain.Order {
	return domain.Order{
		ExternalID: ext,
		Email:      ext + "@b.com",
		TotalPrice: price,
		Date:       at.Format(time.RFC3339),
	}
}

func TestFeed_NewestFirstAndCapped(t *testing.T) {
	base := fixedNow().Add(-48 * time.Hour)
	var orders []domain.Order
	for i := 0; i < 25; i++ {
		orders = append(orders, orderAt(fmt.Sprintf("o%02d", i), base.Add(time.Duration(i)*time.Minute), "1.00"))
	}
	uc := newTestUseCase(orders...)

	resp, err := uc.Feed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, resp.TotalOrders)
	require.Len(t, resp.Orders, 20)
	assert.Equal(t, "o24", resp.Orders[0].ID)
	assert.Equal(t, "o05", resp.Orders[19].ID)
}

func TestFeed_OrdersWithoutDateUseStoreTime(t *testing.T) {
	newest := domain.Order{ExternalID: "no-date", Email: "a@b.com", TotalPrice: "1.00",
		CreatedAt: fixedNow()}
	older := orderAt("dated", fixedNow().Add(-time.Hour), "1.00")
	uc := newTestUseCase(older, newest)

	resp, err := uc.Feed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "no-date", resp.Orders[0].ID)
}

func TestFeed_PropagatesStoreError(t *testing.T) {
	uc := NewQueryUseCase(&stubOrderReader{err: errors.New("boom")})

	_, err := uc.Feed(context.Background())
	assert.Error(t, err)
}

func TestTable_FilterByStatus(t *testing.T) {
	paid := orderAt("1", fixedNow(), "1.00")
	paid.Status = "Paid"
	pending := orderAt("2", fixedNow(), "1.00")
	pending.Status = "pending"
	uc := newTestUseCase(paid, pending)

	resp, err := uc.Table(context.Background(), TableQuery{Status: "Paid"})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "1", resp.Orders[0].ID)
}

func TestTable_SearchMatchesIDEmailAndProduct(t *testing.T) {
	shirt := orderAt("1001", fixedNow(), "1.00")
	shirt.Product = "Blue Shirt"
	hat := orderAt("2002", fixedNow(), "1.00")
	hat.Product = "Hat"
	uc := newTestUseCase(shirt, hat)

	for _, search := range []string{"1001", "1001@b.com", "blue sh"} {
		resp, err := uc.Table(context.Background(), TableQuery{Search: search})
		require.NoError(t, err)
		require.Len(t, resp.Orders, 1, "search=%q", search)
		assert.Equal(t, "1001", resp.Orders[0].ID, "search=%q", search)
	}
}

func TestTable_SortByTotalPriceAscending(t *testing.T) {
	uc := newTestUseCase(
		orderAt("big", fixedNow(), "99.99"),
		orderAt("small", fixedNow(), "5.00"),
		orderAt("mid", fixedNow(), "20.50"),
	)

	resp, err := uc.Table(context.Background(), TableQuery{SortBy: "total_price", Dir: "asc"})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, "small", resp.Orders[0].ID)
	assert.Equal(t, "mid", resp.Orders[1].ID)
	assert.Equal(t, "big", resp.Orders[2].ID)
}

func TestTable_DefaultSortIsDateDescending(t *testing.T) {
	uc := newTestUseCase(
		orderAt("old", fixedNow().Add(-2*time.Hour), "1.00"),
		orderAt("new", fixedNow().Add(-time.Minute), "1.00"),
	)

	resp, err := uc.Table(context.Background(), TableQuery{})
	require.NoError(t, err)
	assert.Equal(t, "new", resp.Orders[0].ID)
	assert.Equal(t, "old", resp.Orders[1].ID)
}

func TestTable_RejectsUnknownSortField(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Table(context.Background(), TableQuery{SortBy: "nope"})
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestSalesSummary_HourlyBuckets(t *testing.T) {
	uc := newTestUseCase(
		// Two orders in the most recent hour bucket.
		orderAt("a", fixedNow().Add(-30*time.Minute), "10.00"),
		orderAt("b", fixedNow().Add(-45*time.Minute), "5.50"),
		// One order three hours back.
		orderAt("c", fixedNow().Add(-3*time.Hour+time.Minute), "2.00"),
		// Outside the 24h window entirely.
		orderAt("d", fixedNow().Add(-30*time.Hour), "100.00"),
	)

	resp, err := uc.SalesSummary(context.Background(), "hourly")
	require.NoError(t, err)

	require.Len(t, resp.Points, 24)

	// The final bucket starts at now; the most recent completed hour is the
	// one before it.
	lastHour := resp.Points[22]
	assert.Equal(t, 15.50, lastHour.Revenue)
	assert.Equal(t, 2, lastHour.OrderCount)

	threeBack := resp.Points[20]
	assert.Equal(t, 2.00, threeBack.Revenue)
	assert.Equal(t, 1, threeBack.OrderCount)

	assert.Equal(t, 17.50, resp.TotalRevenue)
	assert.Equal(t, 3, resp.TotalOrders)
	assert.InDelta(t, 5.83, resp.AvgOrderValue, 0.01)
}

func TestSalesSummary_DailyBuckets(t *testing.T) {
	uc := newTestUseCase(
		orderAt("today", fixedNow().Add(-time.Hour), "10.00"),
		orderAt("yesterday", fixedNow().Add(-25*time.Hour), "20.00"),
	)

	resp, err := uc.SalesSummary(context.Background(), "daily")
	require.NoError(t, err)

	require.Len(t, resp.Points, 7)
	assert.Equal(t, 10.00, resp.Points[5].Revenue)
	assert.Equal(t, 20.00, resp.Points[4].Revenue)
	assert.Equal(t, 30.00, resp.TotalRevenue)
}

func TestSalesSummary_UnparsablePriceCountsAsZero(t *testing.T) {
	uc := newTestUseCase(
		orderAt("good", fixedNow().Add(-time.Minute), "10.00"),
		orderAt("bad", fixedNow().Add(-time.Minute), "free"),
	)

	resp, err := uc.SalesSummary(context.Background(), "hourly")
	require.NoError(t, err)
	assert.Equal(t, 10.00, resp.TotalRevenue)
	assert.Equal(t, 2, resp.TotalOrders)
}

func TestSalesSummary_RejectsUnknownView(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.SalesSummary(context.Background(), "weekly")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestSalesSummary_EmptyStore(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.SalesSummary(context.Background(), "hourly")
	require.NoError(t, err)
	assert.Zero(t, resp.TotalRevenue)
	assert.Zero(t, resp.TotalOrders)
	assert.Zero(t, resp.AvgOrderValue)
}
