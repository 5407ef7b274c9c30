// migrate runs the embedded goose migrations against DATABASE_URL.
// Run: go run ./cmd/migrate [up|down|status]
package main

import (
	"context"
	"log"
	"os"

	"github.com/nirmalvora/padosee-server/internal/infrastructure/postgres"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := postgres.Migrate(context.Background(), dbURL, command); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
