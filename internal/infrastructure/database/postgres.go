package database

import (
	"fmt"
	"log"

	"github.com/dinesync/pos-api/internal/config"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff and floor entities
		&entity.User{},
		&entity.Table{},

		// Catalog entities
		&entity.MenuItem{},
		&entity.SurplusMark{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Bill{},

		// System entities
		&entity.OutboxEvent{},
		&entity.AuditLogEntry{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (menu items, tables,
// and an optional admin user configured via environment variables)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default menu items
	menuItems := []entity.MenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella and basil", Price: money.MustFromString("12.50")},
		{Name: "Chicken Momo", Description: "Steamed dumplings with tomato chutney", Price: money.MustFromString("8.00")},
		{Name: "Dal Bhat Set", Description: "Lentil soup, rice, seasonal vegetables", Price: money.MustFromString("10.00")},
		{Name: "Garlic Naan", Price: money.MustFromString("3.50")},
		{Name: "Masala Tea", Price: money.MustFromString("2.00")},
		{Name: "Fresh Lemonade", Price: money.MustFromString("3.00")},
	}

	for i := range menuItems {
		var existing entity.MenuItem
		if err := db.Where("name = ?", menuItems[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&menuItems[i]).Error; err != nil {
				log.Printf("Warning: failed to create menu item %s: %v", menuItems[i].Name, err)
			}
		}
	}

	// Create default floor tables
	for number := 1; number <= 8; number++ {
		var existing entity.Table
		if err := db.Where("number = ?", number).First(&existing).Error; err != nil {
			capacity := 4
			if number > 6 {
				capacity = 8
			}
			table := entity.Table{Number: number, Capacity: capacity}
			if err := db.Create(&table).Error; err != nil {
				log.Printf("Warning: failed to create table %d: %v", number, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			if adminName == "" {
				adminName = "Admin"
			}
			adminUser := entity.User{
				Name:  adminName,
				Email: adminEmail,
				Role:  "admin",
			}
			if err := db.Create(&adminUser).Error; err != nil {
				log.Printf("Warning: failed to create admin user: %v", err)
			} else {
				log.Printf("Admin user created: %s", adminEmail)
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
