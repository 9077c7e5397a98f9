// report is a one-shot tool that prints the reorder report: every item with
// its computed safety stock, reorder point, and status. Output is an aligned
// table by default, or CSV with -csv. This is an operator tool; the HTTP API
// deliberately serves raw fields only.
//
// Usage: go run ./cmd/report [-csv]
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"inventory-tracker/internal/app"
	"inventory-tracker/internal/core"
	"inventory-tracker/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	asCSV := flag.Bool("csv", false, "write CSV instead of an aligned table")
	flag.Parse()

	ctx := context.Background()
	conn, err := db.Open(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	svc := app.NewAppService(core.NewItemService(conn))
	report, err := svc.ReorderReport(ctx)
	if err != nil {
		log.Fatalf("failed to build reorder report: %v", err)
	}

	if *asCSV {
		writeCSV(report.Lines)
		return
	}
	writeTable(report.Lines)
}

func writeTable(lines []app.ReportLine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tUNIT\tSTOCK\tSAFETY STOCK\tREORDER POINT\tSTATUS")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Item.ID, l.Item.Name, l.Item.Category, l.Item.Unit,
			l.Item.CurrentStock.String(),
			l.Plan.SafetyStock.String(), l.Plan.ReorderPoint.String(), l.Plan.Status)
	}
	w.Flush()
}

func writeCSV(lines []app.ReportLine) {
	w := csv.NewWriter(os.Stdout)
	_ = w.Write([]string{"id", "name", "category", "unit", "avg_daily_usage",
		"max_daily_usage", "lead_time_days", "current_stock",
		"safety_stock", "reorder_point", "status"})
	for _, l := range lines {
		_ = w.Write([]string{
			fmt.Sprintf("%d", l.Item.ID), l.Item.Name, l.Item.Category, l.Item.Unit,
			l.Item.AvgDailyUsage.String(), l.Item.MaxDailyUsage.String(),
			l.Item.LeadTimeDays.String(), l.Item.CurrentStock.String(),
			l.Plan.SafetyStock.String(), l.Plan.ReorderPoint.String(), l.Plan.Status,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("failed to write CSV: %v", err)
	}
}
