package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/adminconsole/internal/client/format"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
)

// KPIs prints the dashboard headline figures.
func (a *App) KPIs(ctx context.Context) error {
	k, err := a.analytics.BusinessKPIs(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Total revenue", format.Currency(k.TotalRevenue)},
		{"Last month revenue", format.Currency(k.LatestMonthRevenue)},
		{"Total orders", format.Number(k.TotalOrders)},
		{"Average order value", format.Currency(k.AvgOrderValue)},
		{"Active customers", format.Number(k.ActiveCustomers)},
		{"Products", fmt.Sprintf("%s (%s discontinued)", format.Number(k.TotalProducts), format.Number(k.DiscontinuedProducts))},
		{"Categories", format.Number(k.NumberOfCategories)},
		{"Suppliers", format.Number(k.NumberOfSuppliers)},
		{"Freight costs", format.CompactCurrency(k.FreightCosts)},
		{"Orders per employee", format.Decimal(k.AvgOrdersPerEmployee, 1)},
		{"Average shipping days", format.Decimal(k.AvgShippingDays, 1)},
		{"On-time delivery", format.Percent(k.OnTimeDeliveryRate, 1)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

// Top prints the top revenue products; args may hold the row limit.
func (a *App) Top(ctx context.Context, args []string) error {
	limit := services.DefaultTopLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			a.println("Usage: top [n]")
			return nil
		}
		limit = n
	}

	products, err := a.analytics.TopRevenueProducts(ctx, limit)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if len(products) == 0 {
		a.println("No products.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tProduct\tCategory\tRevenue\tShare\tSold")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.Rank, p.ProductName, p.CategoryName,
			format.Currency(p.TotalRevenue), format.Percent(p.RevenuePercentage, 1), format.Number(float64(p.QuantitySold)))
	}
	return tw.Flush()
}
