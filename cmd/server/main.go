package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "inventory-tracker/internal/adapters/web"
	"inventory-tracker/internal/app"
	"inventory-tracker/internal/core"
	"inventory-tracker/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	conn, err := db.Open(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	itemService := core.NewItemService(conn)
	svc := app.NewAppService(itemService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
