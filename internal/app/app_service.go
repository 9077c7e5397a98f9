package app

import (
	"context"

	"inventory-tracker/internal/core"
)

type appService struct {
	items core.ItemService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(items core.ItemService) ApplicationService {
	return &appService{items: items}
}

func (s *appService) ListItems(ctx context.Context) (*ItemListResult, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Items: items}, nil
}

func (s *appService) CreateItem(ctx context.Context, req SaveItemRequest) (*ItemResult, error) {
	item, err := s.items.CreateItem(ctx, req.fields())
	if err != nil {
		return nil, err
	}
	return &ItemResult{Item: item}, nil
}

func (s *appService) UpdateItem(ctx context.Context, id int64, req SaveItemRequest) (int64, error) {
	return s.items.UpdateItem(ctx, id, req.fields())
}

func (s *appService) DeleteItem(ctx context.Context, id int64) (int64, error) {
	return s.items.DeleteItem(ctx, id)
}

func (s *appService) ReorderReport(ctx context.Context) (*ReorderReportResult, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]ReportLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, ReportLine{Item: it, Plan: core.PlanFor(it)})
	}
	return &ReorderReportResult{Lines: lines}, nil
}
