package apiclient

import "github.com/shopspring/decimal"

// Product mirrors a row of the remote inventory table. The backend owns the
// authoritative record; every fetch returns a fresh, possibly-stale copy.
type Product struct {
	ProductID          int             `json:"product_id"`
	ProductName        string          `json:"product_name"`
	CurrentStock       int             `json:"current_stock"`
	SafetyStockLevel   int             `json:"safety_stock_level"`
	ForecastedDemand   int             `json:"forecasted_demand"`
	LeadTimeDays       int             `json:"lead_time_days"`
	AnnualDemand       int             `json:"annual_demand"`
	OrderCostFixed     decimal.Decimal `json:"order_cost_fixed"`
	HoldingCostPerUnit decimal.Decimal `json:"holding_cost_per_unit"`
	MRP                decimal.Decimal `json:"mrp"`
	ExpiryDate         string          `json:"expiry_date"`
}

// AdviceEntry is one reorder recommendation from /api/advise. Criticality is
// encoded in the recommendation text via a CRITICAL marker.
type AdviceEntry struct {
	Product        string `json:"product"`
	Current        int    `json:"current"`
	Recommendation string `json:"recommendation"`
}

// MovementItem is a fast-moving or slow-moving list entry.
type MovementItem struct {
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// ExpiryAlert is a product approaching its expiry date.
type ExpiryAlert struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	ExpiryDate   string `json:"expiry_date"`
	DaysToExpiry int    `json:"days_to_expiry"`
}

// OrderLine is one row of the draft purchase order.
type OrderLine struct {
	ProductName     string `json:"product_name"`
	CurrentStock    int    `json:"current_stock"`
	ReorderQuantity int    `json:"reorder_quantity"`
	EOQ             int    `json:"eoq"`
	Priority        string `json:"priority"`
}

// SalesSummary groups monthly keyed series returned by /api/sales-summary.
type SalesSummary struct {
	QuantitySold    map[string]float64 `json:"quantity_sold"`
	Revenue         map[string]float64 `json:"revenue"`
	GrossRevenue    map[string]float64 `json:"gross_revenue"`
	OrderCost       map[string]float64 `json:"order_cost"`
	TotalProfit     map[string]float64 `json:"total_profit"`
	MarginOfRevenue map[string]float64 `json:"margin_of_revenue"`
	NetProfit       map[string]float64 `json:"net_profit"`
}

// HistoryEntry is one transaction from the flat sales/purchase log.
type HistoryEntry struct {
	Type         string          `json:"type"`
	ProductName  string          `json:"product_name"`
	SaleDate     string          `json:"sale_date"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// SaleReceipt is the authoritative revenue/profit computed server-side for a
// recorded sale. Display code must prefer these values over local previews.
type SaleReceipt struct {
	Message string          `json:"message"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// SaleInput is the payload for POST /api/record-sale.
type SaleInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// StockInput is the payload for POST /api/update-stock.
type StockInput struct {
	ProductID      int             `json:"product_id"`
	QuantityChange int             `json:"quantity_change"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

// NewProduct is the payload for POST /api/add-product.
type NewProduct struct {
	ProductName        string          `json:"product_name"`
	CurrentStock       int             `json:"current_stock"`
	SafetyStockLevel   int             `json:"safety_stock_level"`
	ForecastedDemand   int             `json:"forecasted_demand"`
	LeadTimeDays       int             `json:"lead_time_days"`
	AnnualDemand       int             `json:"annual_demand"`
	OrderCostFixed     decimal.Decimal `json:"order_cost_fixed"`
	HoldingCostPerUnit decimal.Decimal `json:"holding_cost_per_unit"`
	ExpiryDate         string          `json:"expiry_date"`
}
