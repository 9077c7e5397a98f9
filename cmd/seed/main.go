// seed is a one-shot tool that loads a small set of sample ingredients into
// an empty database. It refuses to touch a non-empty items table unless run
// with -force.
//
// Usage: go run ./cmd/seed [-force]
package main

import (
	"context"
	"flag"
	"log"

	"inventory-tracker/internal/core"
	"inventory-tracker/internal/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type seedItem struct {
	name, category, unit  string
	avg, max, lead, stock float64
}

var samples = []seedItem{
	{"Chicken breast", "Protein", "kg", 5, 10, 2, 15},
	{"Tomatoes", "Produce", "kg", 8, 12, 1, 10},
	{"Mozzarella", "Dairy", "kg", 3, 5, 3, 20},
	{"Flour", "Dry Goods", "kg", 10, 14, 4, 60},
	{"Olive oil", "Sauce", "l", 1.5, 2.5, 5, 12},
	{"Sparkling water", "Beverage", "bottle", 20, 35, 2, 48},
}

func main() {
	_ = godotenv.Load()
	force := flag.Bool("force", false, "seed even if the items table is not empty")
	flag.Parse()

	ctx := context.Background()
	conn, err := db.Open(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	items := core.NewItemService(conn)

	existing, err := items.ListItems(ctx)
	if err != nil {
		log.Fatalf("failed to list items: %v", err)
	}
	if len(existing) > 0 && !*force {
		log.Fatalf("items table already has %d rows; re-run with -force to seed anyway", len(existing))
	}

	for _, s := range samples {
		avg := decimal.NewFromFloat(s.avg)
		max := decimal.NewFromFloat(s.max)
		lead := decimal.NewFromFloat(s.lead)
		stock := decimal.NewFromFloat(s.stock)
		created, err := items.CreateItem(ctx, core.ItemFields{
			Name:          &s.name,
			Category:      &s.category,
			Unit:          &s.unit,
			AvgDailyUsage: &avg,
			MaxDailyUsage: &max,
			LeadTimeDays:  &lead,
			CurrentStock:  &stock,
		})
		if err != nil {
			log.Fatalf("failed to insert %s: %v", s.name, err)
		}
		log.Printf("inserted %s (id %d)", created.Name, created.ID)
	}

	log.Printf("seeded %d items", len(samples))
}
