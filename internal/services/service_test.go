package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard-api/internal/apperr"
	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role, name string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	if role == models.RoleEmployer {
		user.Profile.Company = name + " Inc"
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID uuid.UUID, title string, createdAt time.Time) models.Job {
	t.Helper()

	job := models.Job{
		Title:       title,
		Description: "Build and run things",
		Location:    "Remote",
		JobType:     models.JobTypeFullTime,
		IsActive:    true,
		EmployerID:  employerID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&job).Error)
	return job
}

func deactivate(t *testing.T, db *gorm.DB, job *models.Job) {
	t.Helper()
	require.NoError(t, db.Model(job).Update("is_active", false).Error)
	job.IsActive = false
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, kind, e.Kind)
}

func searchAll() *dtos.JobSearchQuery {
	return &dtos.JobSearchQuery{Page: 1, Limit: 10}
}
