package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(s string) func(out any) {
	return func(out any) {
		*out.(*json.RawMessage) = json.RawMessage(s)
	}
}

func authenticatedStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.New()
	require.NoError(t, store.CompleteAuthentication("A", "R", alice))
	return store
}

func TestBusinessKPIs_MapsBackendKeys(t *testing.T) {
	fc := &fakeClient{getBody: body(`{"data": [{
		"jami_buyurtmalar": 830,
		"faol_mijozlar": "89",
		"jami_daromad": "1265793.04",
		"jami_yuk_xarajati": 64942.69,
		"ortacha_buyurtma_qiymati": 1525.05,
		"jami_mahsulotlar": 77,
		"toxtatilgan_mahsulotlar": 8,
		"kategoriyalar_soni": 8,
		"yetkazib_beruvchilar_soni": 29,
		"ortacha_buyurtma_per_xodim": 92.2,
		"ortacha_yetkazish_kunlari": 8.49,
		"vaqtida_yetkazish_foizi": null,
		"oxirgi_oy_daromadi": 16325.15
	}]}`)}
	svc := NewAnalyticsService(fc, authenticatedStore(t), logging.Discard())

	got, err := svc.BusinessKPIs(context.Background())
	require.NoError(t, err)

	want := &models.BusinessKPI{
		TotalOrders:          830,
		ActiveCustomers:      89,
		TotalRevenue:         1265793.04,
		FreightCosts:         64942.69,
		AvgOrderValue:        1525.05,
		TotalProducts:        77,
		DiscontinuedProducts: 8,
		NumberOfCategories:   8,
		NumberOfSuppliers:    29,
		AvgOrdersPerEmployee: 92.2,
		AvgShippingDays:      8.49,
		LatestMonthRevenue:   16325.15,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kpis mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"A"}, fc.getTokens)
}

func TestBusinessKPIs_EmptyReport(t *testing.T) {
	fc := &fakeClient{getBody: body(`[]`)}
	svc := NewAnalyticsService(fc, authenticatedStore(t), logging.Discard())

	got, err := svc.BusinessKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.BusinessKPI{}, got)
}

func TestTopRevenueProducts_RanksAndShares(t *testing.T) {
	fc := &fakeClient{getBody: body(`[
		{"product_id": 38, "product_name": "Cote de Blaye", "category_name": "Beverages", "total_revenue": 300, "total_quantity_sold": 10, "total_orders": 4},
		{"product_id": 29, "product_name": "", "total_revenue": "100", "total_quantity_sold": 5, "total_orders": 2}
	]`)}
	svc := NewAnalyticsService(fc, authenticatedStore(t), logging.Discard())

	got, err := svc.TopRevenueProducts(context.Background(), 0)
	require.NoError(t, err)

	want := []models.TopRevenueProduct{
		{Rank: 1, ProductID: 38, ProductName: "Cote de Blaye", CategoryName: "Beverages", QuantitySold: 10, TotalRevenue: 300, OrderCount: 4, RevenuePercentage: 75},
		{Rank: 2, ProductID: 29, ProductName: "Unknown", QuantitySold: 5, TotalRevenue: 100, OrderCount: 2, RevenuePercentage: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalytics_RequiresAuthentication(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAnalyticsService(fc, session.New(), logging.Discard())

	_, err := svc.BusinessKPIs(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, fc.getCalls)
}

func TestAnalytics_RefreshesOnceAndRetries(t *testing.T) {
	fc := &fakeClient{
		getErrs:    []error{authErr(http.StatusUnauthorized, "token expired"), nil},
		getBody:    body(`[]`),
		refreshRes: tokenResult("A2", "R2"),
	}
	store := authenticatedStore(t)
	svc := NewAnalyticsService(fc, store, logging.Discard())

	_, err := svc.TopRevenueProducts(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, fc.refreshCalls)
	assert.Equal(t, "R", fc.lastRefreshToken)
	assert.Equal(t, []string{"A", "A2"}, fc.getTokens)

	snap := store.Snapshot()
	assert.Equal(t, models.StatusAuthenticated, snap.Status)
	assert.Equal(t, "A2", snap.AccessToken)
	assert.Equal(t, "R2", snap.RefreshToken)
}

func TestAnalytics_RefusedRefreshClearsSession(t *testing.T) {
	fc := &fakeClient{
		getErrs:    []error{authErr(http.StatusUnauthorized, "token expired")},
		refreshErr: authErr(http.StatusUnauthorized, "refresh expired"),
	}
	store := authenticatedStore(t)
	svc := NewAnalyticsService(fc, store, logging.Discard())

	_, err := svc.BusinessKPIs(context.Background())

	assert.EqualError(t, err, "refresh expired")
	assert.Equal(t, models.StatusAnonymous, store.Status())
	assert.Equal(t, 1, fc.getCalls)
}

func TestAnalytics_UnreachableRefreshKeepsSession(t *testing.T) {
	fc := &fakeClient{
		getErrs:    []error{authErr(http.StatusUnauthorized, "token expired")},
		refreshErr: &client.AuthError{Message: "session refresh failed", Err: client.ErrUnavailable},
	}
	store := authenticatedStore(t)
	svc := NewAnalyticsService(fc, store, logging.Discard())

	_, err := svc.BusinessKPIs(context.Background())

	require.True(t, errors.Is(err, client.ErrUnavailable))
	assert.Equal(t, models.StatusAuthenticated, store.Status())
}

func TestAnalytics_RetryStillUnauthorizedClearsSession(t *testing.T) {
	fc := &fakeClient{
		getErrs: []error{
			authErr(http.StatusUnauthorized, "token expired"),
			authErr(http.StatusUnauthorized, "still expired"),
		},
		refreshRes: tokenResult("A2", "R2"),
	}
	store := authenticatedStore(t)
	svc := NewAnalyticsService(fc, store, logging.Discard())

	_, err := svc.BusinessKPIs(context.Background())

	assert.True(t, client.IsUnauthorized(err))
	assert.Equal(t, 2, fc.getCalls)
	assert.Equal(t, models.StatusAnonymous, store.Status())
}

func TestAnalytics_OtherErrorsPassThrough(t *testing.T) {
	fc := &fakeClient{getErrs: []error{authErr(http.StatusInternalServerError, "boom")}}
	store := authenticatedStore(t)
	svc := NewAnalyticsService(fc, store, logging.Discard())

	_, err := svc.BusinessKPIs(context.Background())

	assert.EqualError(t, err, "boom")
	assert.Zero(t, fc.refreshCalls)
	assert.Equal(t, models.StatusAuthenticated, store.Status())
}
