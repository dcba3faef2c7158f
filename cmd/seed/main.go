package main

import (
	"log"
	"os"

	"github.com/ideashelf/backend/internal/config"
	"github.com/ideashelf/backend/internal/database"
	"github.com/ideashelf/backend/internal/models"
	"github.com/ideashelf/backend/internal/utils"
)

// Seeds the initial admin account from ADMIN_USERNAME / ADMIN_PASSWORD.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("username = ?", adminUsername).First(&admin)

	if result.Error == nil {
		if admin.IsAdmin {
			log.Println("Admin user already exists:", admin.Username)
			return
		}
		// Promote the existing account instead of failing on the unique index.
		if err := database.DB.Model(&admin).Update("is_admin", true).Error; err != nil {
			log.Fatal("Failed to promote existing user:", err)
		}
		log.Println("Existing user promoted to admin:", admin.Username)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		Username:     adminUsername,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully!")
	log.Println("   Username:", admin.Username)
}
