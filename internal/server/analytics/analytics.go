// Package analytics serves canned report data for the dev server. Rows are
// shaped like the production API's query results: KPI keys in Uzbek, money as
// decimal strings.
package analytics

import (
	"fmt"
	"sort"
)

const (
	DefaultTopLimit = 5
	MaxTopLimit     = 100
)

type Product struct {
	ID           int64
	Name         string
	Category     string
	Supplier     string
	QuantitySold int64
	Revenue      float64
	Orders       int64
}

// Row is one result row as it goes over the wire.
type Row map[string]any

type Service struct {
	kpis     Row
	products []Product
}

// NewService returns a service over the built-in sample data set.
func NewService() *Service {
	return NewServiceWith(sampleKPIs(), sampleProducts())
}

func NewServiceWith(kpis Row, products []Product) *Service {
	p := make([]Product, len(products))
	copy(p, products)
	sort.SliceStable(p, func(i, j int) bool { return p[i].Revenue > p[j].Revenue })
	return &Service{kpis: kpis, products: p}
}

func (s *Service) BusinessKPIs() []Row {
	if s.kpis == nil {
		return []Row{}
	}
	return []Row{s.kpis}
}

// TopRevenueProducts returns the limit best-selling products by revenue.
func (s *Service) TopRevenueProducts(limit int) []Row {
	if limit > len(s.products) {
		limit = len(s.products)
	}
	out := make([]Row, 0, limit)
	for _, p := range s.products[:limit] {
		out = append(out, Row{
			"product_id":          p.ID,
			"product_name":        p.Name,
			"category_name":       p.Category,
			"supplier_name":       p.Supplier,
			"total_revenue":       money(p.Revenue),
			"total_quantity_sold": p.QuantitySold,
			"total_orders":        p.Orders,
		})
	}
	return out
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
