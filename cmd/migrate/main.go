package main

import (
	"log"
	"os"

	"viwahaa-be/internal/model"
	"viwahaa-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.Customer{},
		&model.AdminUser{},
		&model.Message{},
		&model.BookedPackage{},
		&model.Interest{},
		&model.ProfileInterest{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: indexes the chat room queries depend on
	postMigrationSQL := []string{
		`CREATE INDEX idx_messages_room_timestamp ON messages (room_id, timestamp);`,
		`CREATE INDEX idx_booked_packages_customer ON booked_packages (customer_id);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
