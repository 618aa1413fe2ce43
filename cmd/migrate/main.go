package main

import (
	"log"

	"github.com/dinesync/pos-api/internal/config"
	"github.com/dinesync/pos-api/internal/infrastructure/database"
)

// The migrate binary applies schema migrations and seeds default data.
func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	log.Println("Migration completed")
}
