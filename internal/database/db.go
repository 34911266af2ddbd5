package database

import (
	"log"

	"github.com/justsurfingit/jobjournal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Review{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
