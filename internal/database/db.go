package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/config"
	"github.com/ideashelf/backend/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	log.Println("Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(&models.User{}, &models.Idea{}, &models.Like{})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	if err := MigrateLegacyBody(DB); err != nil {
		log.Fatal("Legacy body migration failed:", err)
	}

	log.Println("Database migration completed")
}
