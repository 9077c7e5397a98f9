package app

import (
	"github.com/shopspring/decimal"

	"inventory-tracker/internal/core"
)

// SaveItemRequest is the partial item body accepted by both create and
// update. Pointer fields distinguish "absent" from "zero": on update only
// non-nil fields are applied, on create nil fields default to zero/empty.
type SaveItemRequest struct {
	Name          *string
	Category      *string
	Unit          *string
	AvgDailyUsage *decimal.Decimal
	MaxDailyUsage *decimal.Decimal
	LeadTimeDays  *decimal.Decimal
	CurrentStock  *decimal.Decimal
}

func (r SaveItemRequest) fields() core.ItemFields {
	return core.ItemFields{
		Name:          r.Name,
		Category:      r.Category,
		Unit:          r.Unit,
		AvgDailyUsage: r.AvgDailyUsage,
		MaxDailyUsage: r.MaxDailyUsage,
		LeadTimeDays:  r.LeadTimeDays,
		CurrentStock:  r.CurrentStock,
	}
}
