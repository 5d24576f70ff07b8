package models

// BusinessKPI is the dashboard headline row.
type BusinessKPI struct {
	TotalOrders          float64 `json:"total_orders"`
	ActiveCustomers      float64 `json:"active_customers"`
	TotalRevenue         float64 `json:"total_revenue"`
	FreightCosts         float64 `json:"freight_costs"`
	AvgOrderValue        float64 `json:"avg_order_value"`
	TotalProducts        float64 `json:"total_products"`
	DiscontinuedProducts float64 `json:"discontinued_products"`
	NumberOfCategories   float64 `json:"number_of_categories"`
	NumberOfSuppliers    float64 `json:"number_of_suppliers"`
	AvgOrdersPerEmployee float64 `json:"avg_orders_per_employee"`
	AvgShippingDays      float64 `json:"avg_shipping_days"`
	OnTimeDeliveryRate   float64 `json:"on_time_delivery_rate"`
	LatestMonthRevenue   float64 `json:"latest_month_revenue"`
}

// TopRevenueProduct is one ranked row of the top revenue report.
type TopRevenueProduct struct {
	Rank              int     `json:"rank"`
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	CategoryName      string  `json:"category_name"`
	SupplierName      string  `json:"supplier_name"`
	QuantitySold      int64   `json:"quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	OrderCount        int64   `json:"order_count"`
	RevenuePercentage float64 `json:"revenue_percentage"`
}
