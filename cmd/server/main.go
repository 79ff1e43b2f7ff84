package main

import (
	"cms-backend/internal/config"
	"cms-backend/internal/entity"
	"cms-backend/internal/server"
	"cms-backend/pkg/database"
	"cms-backend/pkg/logger"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// Admins cannot register through the API, so development gets one
	// seeded up front.
	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin user")
		}
	}

	srv := server.New(cfg, db)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Category{},
		&entity.Content{},
		&entity.AuthToken{},
	)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", "admin@cms.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Info().Msg("admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte("Admin@12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Username:     "admin",
		Email:        "admin@cms.local",
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: string(hashedPasswordBytes),
		IsAdmin:      true,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		profile := entity.Profile{
			UserID:  admin.ID,
			PhoneNo: 9999999999,
			PinCode: 999999,
		}

		return tx.Create(&profile).Error
	})
}
