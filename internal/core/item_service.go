package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemService manages the items table. Unknown ids are not errors: updates and
// deletes report how many rows they touched, and zero is a valid answer.
type ItemService interface {
	// ListItems returns every item ordered by id. No filter, no pagination.
	ListItems(ctx context.Context) ([]Item, error)
	// CreateItem inserts a row from the given fields. Absent fields are stored
	// as zero/empty; nothing is required. The returned item carries the
	// assigned id.
	CreateItem(ctx context.Context, fields ItemFields) (*Item, error)
	// UpdateItem applies only the non-nil fields to the row with the given id
	// and returns the number of rows affected (0 when the id is absent).
	UpdateItem(ctx context.Context, id int64, fields ItemFields) (int64, error)
	// DeleteItem removes the row with the given id and returns the number of
	// rows affected (0 when the id is absent).
	DeleteItem(ctx context.Context, id int64) (int64, error)
}

type itemService struct {
	db *sql.DB
}

func NewItemService(db *sql.DB) ItemService {
	return &itemService{db: db}
}

const itemColumns = "id, name, category, unit, avg_daily_usage, max_daily_usage, lead_time_days, current_stock"

// scanItem reads one items row. Numeric columns are scanned as text so SQLite
// affinity quirks (integer-typed zeros, stray text) all land in decimal parsing.
func scanItem(scan func(dest ...any) error) (*Item, error) {
	var it Item
	var avg, max, lead, stock string
	if err := scan(&it.ID, &it.Name, &it.Category, &it.Unit, &avg, &max, &lead, &stock); err != nil {
		return nil, err
	}
	var err error
	if it.AvgDailyUsage, err = parseNumeric(avg); err != nil {
		return nil, fmt.Errorf("bad avg_daily_usage %q: %w", avg, err)
	}
	if it.MaxDailyUsage, err = parseNumeric(max); err != nil {
		return nil, fmt.Errorf("bad max_daily_usage %q: %w", max, err)
	}
	if it.LeadTimeDays, err = parseNumeric(lead); err != nil {
		return nil, fmt.Errorf("bad lead_time_days %q: %w", lead, err)
	}
	if it.CurrentStock, err = parseNumeric(stock); err != nil {
		return nil, fmt.Errorf("bad current_stock %q: %w", stock, err)
	}
	return &it, nil
}

func parseNumeric(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func (s *itemService) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+itemColumns+" FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}
	return items, nil
}

func (s *itemService) CreateItem(ctx context.Context, fields ItemFields) (*Item, error) {
	it := Item{
		AvgDailyUsage: decimal.Zero,
		MaxDailyUsage: decimal.Zero,
		LeadTimeDays:  decimal.Zero,
		CurrentStock:  decimal.Zero,
	}
	if fields.Name != nil {
		it.Name = *fields.Name
	}
	if fields.Category != nil {
		it.Category = *fields.Category
	}
	if fields.Unit != nil {
		it.Unit = *fields.Unit
	}
	if fields.AvgDailyUsage != nil {
		it.AvgDailyUsage = *fields.AvgDailyUsage
	}
	if fields.MaxDailyUsage != nil {
		it.MaxDailyUsage = *fields.MaxDailyUsage
	}
	if fields.LeadTimeDays != nil {
		it.LeadTimeDays = *fields.LeadTimeDays
	}
	if fields.CurrentStock != nil {
		it.CurrentStock = *fields.CurrentStock
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO items (name, category, unit, avg_daily_usage, max_daily_usage, lead_time_days, current_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, it.Name, it.Category, it.Unit,
		it.AvgDailyUsage.String(), it.MaxDailyUsage.String(),
		it.LeadTimeDays.String(), it.CurrentStock.String())
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new item id: %w", err)
	}
	it.ID = id
	return &it, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, fields ItemFields) (int64, error) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if fields.Name != nil {
		add("name", *fields.Name)
	}
	if fields.Category != nil {
		add("category", *fields.Category)
	}
	if fields.Unit != nil {
		add("unit", *fields.Unit)
	}
	if fields.AvgDailyUsage != nil {
		add("avg_daily_usage", fields.AvgDailyUsage.String())
	}
	if fields.MaxDailyUsage != nil {
		add("max_daily_usage", fields.MaxDailyUsage.String())
	}
	if fields.LeadTimeDays != nil {
		add("lead_time_days", fields.LeadTimeDays.String())
	}
	if fields.CurrentStock != nil {
		add("current_stock", fields.CurrentStock.String())
	}

	// A body with no known fields still "succeeds": it touches the row to
	// report whether the id exists, changing nothing.
	if len(sets) == 0 {
		add("id", id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update item %d: %w", id, err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated rows: %w", err)
	}
	return changes, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return changes, nil
}
