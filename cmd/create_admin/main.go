package main

import (
	"errors"
	"fmt"
	"log"

	"unichip/internal/config"
	"unichip/internal/database"
	"unichip/internal/domain"
	"unichip/internal/util"

	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Auth.AdminUsername == "" || cfg.Auth.AdminPassword == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}
	if len(cfg.Auth.AdminPassword) < 8 {
		log.Fatal("ADMIN_PASSWORD must be at least 8 characters")
	}

	// Initialize database
	if err := database.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()

	hashedPassword, err := util.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Existing admins get their password reset
	var existingUser domain.User
	err = db.Where("username = ?", cfg.Auth.AdminUsername).First(&existingUser).Error
	switch {
	case err == nil:
		if err := db.Model(&existingUser).Updates(map[string]any{
			"hashed_password": hashedPassword,
			"is_active":       true,
		}).Error; err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		fmt.Printf("Admin user %q already existed; password reset.\n", cfg.Auth.AdminUsername)
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	adminUser := domain.User{
		Username:       cfg.Auth.AdminUsername,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Printf("Username: %s\n", cfg.Auth.AdminUsername)
}
