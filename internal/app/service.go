package app

import "context"

// ApplicationService is the single interface all adapters (web, report CLI)
// call. It decouples presentation from the store; implementations contain no
// fmt.Println and no display logic.
type ApplicationService interface {
	// ListItems returns every inventory item.
	ListItems(ctx context.Context) (*ItemListResult, error)

	// CreateItem inserts a new item from a partial field set and returns it
	// with its assigned id. No field is required.
	CreateItem(ctx context.Context, req SaveItemRequest) (*ItemResult, error)

	// UpdateItem applies the fields present in req to the item with the given
	// id and returns the number of rows affected (0 when the id is unknown).
	UpdateItem(ctx context.Context, id int64, req SaveItemRequest) (int64, error)

	// DeleteItem removes an item and returns the number of rows affected
	// (0 when the id is unknown).
	DeleteItem(ctx context.Context, id int64) (int64, error)

	// ReorderReport returns every item joined with its derived plan figures.
	// Used by cmd/report only; the HTTP API serves raw fields.
	ReorderReport(ctx context.Context) (*ReorderReportResult, error)
}
