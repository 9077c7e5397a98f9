package core

import "github.com/shopspring/decimal"

// Stock status labels shown in the UI and the reorder report.
const (
	StatusOK      = "OK"
	StatusReorder = "Reorder Now"
)

// Plan is the set of derived inventory-control figures for one item.
// The HTTP API never serves these; the browser recomputes them from raw
// fields on every render and cmd/report computes them for operators.
type Plan struct {
	SafetyStock  decimal.Decimal
	ReorderPoint decimal.Decimal
	Status       string
}

// SafetyStock is the buffer quantity held to absorb the gap between peak and
// average demand over the lead time:
//
//	max(0, round2(max·lead − avg·lead))
//
// When max < avg the raw difference is negative and is clamped to zero; the
// inconsistent input is not surfaced anywhere.
func SafetyStock(avg, max, lead decimal.Decimal) decimal.Decimal {
	buffer := max.Mul(lead).Sub(avg.Mul(lead)).Round(2)
	if buffer.IsNegative() {
		return decimal.Zero
	}
	return buffer
}

// ReorderPoint is the stock level at or below which replenishment should be
// triggered: round2(avg·lead) + safety stock.
func ReorderPoint(avg, max, lead decimal.Decimal) decimal.Decimal {
	return avg.Mul(lead).Round(2).Add(SafetyStock(avg, max, lead))
}

// StockStatus labels an item "Reorder Now" when current stock has fallen to
// or below the reorder point.
func StockStatus(current, reorderPoint decimal.Decimal) string {
	if current.LessThanOrEqual(reorderPoint) {
		return StatusReorder
	}
	return StatusOK
}

// PlanFor derives the full plan for one item from its current field values.
func PlanFor(it Item) Plan {
	ss := SafetyStock(it.AvgDailyUsage, it.MaxDailyUsage, it.LeadTimeDays)
	rp := it.AvgDailyUsage.Mul(it.LeadTimeDays).Round(2).Add(ss)
	return Plan{
		SafetyStock:  ss,
		ReorderPoint: rp,
		Status:       StockStatus(it.CurrentStock, rp),
	}
}
