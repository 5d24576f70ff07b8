package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/client"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
	"github.com/goccy/go-json"
)

const (
	PathBusinessKPIs       = "/analytics/dashboard/business-kpis"
	PathTopRevenueProducts = "/analytics/products/top-revenue"

	DefaultTopLimit = 10
)

// AnalyticsService reads protected analytics reports.
//
// Every read needs an authenticated session. A read rejected as unauthorized
// triggers one token refresh and one retry; when the refresh is refused or the
// retry is still unauthorized, the session is cleared.
type AnalyticsService interface {
	BusinessKPIs(ctx context.Context) (*models.BusinessKPI, error)
	TopRevenueProducts(ctx context.Context, limit int) ([]models.TopRevenueProduct, error)
}

type analyticsService struct {
	client client.Client
	store  *session.Store
	logger logging.Logger
}

func NewAnalyticsService(c client.Client, store *session.Store, logger logging.Logger) AnalyticsService {
	return &analyticsService{client: c, store: store, logger: logger.With("component", "analytics")}
}

func (s *analyticsService) BusinessKPIs(ctx context.Context) (*models.BusinessKPI, error) {
	var raw json.RawMessage
	if err := s.get(ctx, PathBusinessKPIs, &raw); err != nil {
		return nil, err
	}

	rows, err := unwrapRows(raw)
	if err != nil {
		return nil, fmt.Errorf("decode business kpis: %w", err)
	}
	if len(rows) == 0 {
		return &models.BusinessKPI{}, nil
	}

	row := rows[0]
	return &models.BusinessKPI{
		TotalOrders:          row.float("jami_buyurtmalar"),
		ActiveCustomers:      row.float("faol_mijozlar"),
		TotalRevenue:         row.float("jami_daromad"),
		FreightCosts:         row.float("jami_yuk_xarajati"),
		AvgOrderValue:        row.float("ortacha_buyurtma_qiymati"),
		TotalProducts:        row.float("jami_mahsulotlar"),
		DiscontinuedProducts: row.float("toxtatilgan_mahsulotlar"),
		NumberOfCategories:   row.float("kategoriyalar_soni"),
		NumberOfSuppliers:    row.float("yetkazib_beruvchilar_soni"),
		AvgOrdersPerEmployee: row.float("ortacha_buyurtma_per_xodim"),
		AvgShippingDays:      row.float("ortacha_yetkazish_kunlari"),
		OnTimeDeliveryRate:   row.float("vaqtida_yetkazish_foizi"),
		LatestMonthRevenue:   row.float("oxirgi_oy_daromadi"),
	}, nil
}

// TopRevenueProducts ranks products by revenue and computes each one's share
// of the listed total. A non-positive limit uses DefaultTopLimit.
func (s *analyticsService) TopRevenueProducts(ctx context.Context, limit int) ([]models.TopRevenueProduct, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var raw json.RawMessage
	if err := s.get(ctx, fmt.Sprintf("%s?limit=%d", PathTopRevenueProducts, limit), &raw); err != nil {
		return nil, err
	}

	rows, err := unwrapRows(raw)
	if err != nil {
		return nil, fmt.Errorf("decode top revenue products: %w", err)
	}

	var total float64
	for _, r := range rows {
		total += r.float("total_revenue")
	}

	out := make([]models.TopRevenueProduct, 0, len(rows))
	for i, r := range rows {
		revenue := r.float("total_revenue")
		p := models.TopRevenueProduct{
			Rank:         i + 1,
			ProductID:    int64(r.float("product_id")),
			ProductName:  r.str("product_name", "Unknown"),
			CategoryName: r.str("category_name", ""),
			SupplierName: r.str("supplier_name", ""),
			QuantitySold: int64(r.float("total_quantity_sold")),
			TotalRevenue: revenue,
			OrderCount:   int64(r.float("total_orders")),
		}
		if total > 0 {
			p.RevenuePercentage = revenue / total * 100
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *analyticsService) get(ctx context.Context, path string, out any) error {
	snap := s.store.Snapshot()
	if snap.Status != models.StatusAuthenticated {
		return ErrNotAuthenticated
	}

	err := s.client.Get(ctx, path, snap.AccessToken, out)
	if err == nil || !client.IsUnauthorized(err) {
		return err
	}

	s.logger.Info(ctx, "access token rejected, refreshing", "path", path)
	res, rerr := s.client.Refresh(ctx, snap.RefreshToken)
	if rerr != nil {
		if rejected(rerr) {
			s.logger.Warn(ctx, "refresh refused, clearing session", "error", rerr)
			s.store.Clear()
		}
		return rerr
	}
	if err := s.store.RotateTokens(res.Tokens.AccessToken, res.Tokens.RefreshToken); err != nil {
		// the session was cleared or replaced while refreshing
		return ErrStale
	}

	err = s.client.Get(ctx, path, res.Tokens.AccessToken, out)
	if client.IsUnauthorized(err) {
		s.logger.Warn(ctx, "retry still unauthorized, clearing session", "path", path)
		s.store.Clear()
	}
	return err
}

type row map[string]json.RawMessage

// unwrapRows accepts a bare object, a list of objects, or either of those
// wrapped in {"data": ...}.
func unwrapRows(raw json.RawMessage) ([]row, error) {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '{' {
		var obj row
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		if data, ok := obj["data"]; ok {
			return unwrapRows(data)
		}
		return []row{obj}, nil
	}

	var rows []row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// float reads a numeric field that the backend may send as a number, a
// decimal string, or null. Anything unreadable is zero.
func (r row) float(key string) float64 {
	v, ok := r[key]
	if !ok {
		return 0
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

func (r row) str(key, fallback string) string {
	v, ok := r[key]
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil || s == "" {
		return fallback
	}
	return s
}
