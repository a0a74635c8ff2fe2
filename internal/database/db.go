package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard-api/internal/models"
)

// Connect opens the Postgres connection and runs migrations. TranslateError
// lets callers match duplicate-key failures as gorm.ErrDuplicatedKey, which
// the application-uniqueness check relies on.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Msg("database connection established")

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	return db
}
