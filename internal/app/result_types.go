package app

import "inventory-tracker/internal/core"

// ItemListResult is returned by ListItems.
type ItemListResult struct {
	Items []core.Item
}

// ItemResult is returned by CreateItem.
type ItemResult struct {
	Item *core.Item
}

// ReorderReportResult is returned by ReorderReport.
type ReorderReportResult struct {
	Lines []ReportLine
}

// ReportLine is one item joined with its derived plan figures.
type ReportLine struct {
	Item core.Item
	Plan core.Plan
}
