package core

import "github.com/shopspring/decimal"

// Categories is the label set the frontend offers for new ingredients.
// The column itself is free text; nothing rejects other values.
var Categories = []string{"Protein", "Produce", "Dairy", "Dry Goods", "Sauce", "Beverage", "Other"}

// Item is one ingredient row in the items table.
type Item struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	AvgDailyUsage decimal.Decimal `json:"avgDailyUsage"`
	MaxDailyUsage decimal.Decimal `json:"maxDailyUsage"`
	LeadTimeDays  decimal.Decimal `json:"leadTime"` // days between ordering and receiving
	CurrentStock  decimal.Decimal `json:"currentStock"`
}

// ItemFields carries a partial set of item columns. A nil pointer means the
// field was absent from the request and must keep its stored value on update
// (or default to zero/empty on create).
type ItemFields struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	AvgDailyUsage *decimal.Decimal `json:"avgDailyUsage"`
	MaxDailyUsage *decimal.Decimal `json:"maxDailyUsage"`
	LeadTimeDays  *decimal.Decimal `json:"leadTime"`
	CurrentStock  *decimal.Decimal `json:"currentStock"`
}
