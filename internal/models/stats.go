package models

// DashboardStats is the store-wide summary shown on the dashboard.
// Each field is computed independently; a failed computation leaves its
// field at zero rather than failing the whole summary.
type DashboardStats struct {
	TotalItems          int     `json:"total_items"`
	TotalCategories     int     `json:"total_categories"`
	TotalValue          float64 `json:"total_value"`
	LowStockItems       int     `json:"low_stock_items"`
	CategoriesWithItems int     `json:"categories_with_items"`
	TodaysChanges       int     `json:"todays_changes"`
}
