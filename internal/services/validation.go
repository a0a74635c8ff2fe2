package services

import (
	"strings"

	"github.com/jobboardhq/jobboard-api/internal/apperr"
	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/models"
)

// Pure validation, run before any store mutation. Transport-level binding
// catches most of this too; these keep the service contract self-contained.

func ValidateNewJob(req *dtos.JobCreationRequest) *apperr.Error {
	if strings.TrimSpace(req.Title) == "" {
		return apperr.Validation("Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperr.Validation("Description is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return apperr.Validation("Location is required")
	}
	if !models.JobType(req.JobType).Valid() {
		return apperr.Validation("Job type must be one of: full-time, part-time, contract, freelance")
	}
	return nil
}

func ValidateApplication(req *dtos.ApplicationRequest) *apperr.Error {
	if strings.TrimSpace(req.JobID) == "" {
		return apperr.Validation("Job ID is required")
	}
	if strings.TrimSpace(req.CoverLetter) == "" {
		return apperr.Validation("Cover letter is required")
	}
	return nil
}

func ValidateStatus(status string) *apperr.Error {
	if !models.ApplicationStatus(status).Valid() {
		return apperr.Validation("Status must be one of: pending, reviewed, accepted, rejected")
	}
	return nil
}
