package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard-api/internal/apperr"
	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// jobSummary limits a preloaded job to the fields shown on an applicant's
// own application list.
func jobSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "location", "job_type", "employer_id")
}

// applicantSummary limits a preloaded applicant to its public fields.
func applicantSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "profile")
}

// Apply creates a pending application for an active job. The existence check
// here is a fast path; the unique index on (job_id, applicant_id) settles
// concurrent duplicates, and its violation is reported as the same conflict.
func (s *ApplicationService) Apply(applicantID uuid.UUID, req *dtos.ApplicationRequest) (*models.Application, error) {
	if e := ValidateApplication(req); e != nil {
		return nil, e
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, apperr.Validation("Job ID is invalid")
	}

	var job models.Job
	err = s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !job.IsActive) {
		return nil, apperr.NotFound("Job not found or inactive")
	}
	if err != nil {
		return nil, apperr.Store(err)
	}

	var existing models.Application
	err = s.DB.First(&existing, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err == nil {
		return nil, apperr.Conflict("You have already applied for this job")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Store(err)
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
		Status:      models.StatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You have already applied for this job")
		}
		return nil, apperr.Store(err)
	}
	return application, nil
}

// ListMine returns the applicant's applications, newest first, each annotated
// with a summary of its job.
func (s *ApplicationService) ListMine(applicantID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Where("applicant_id = ?", applicantID).
		Preload("Job", jobSummary).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return applications, nil
}

// ListForJob returns a job's applications to its owning employer, newest
// first, each annotated with the applicant's public profile.
func (s *ApplicationService) ListForJob(employerID, jobID uuid.UUID) ([]models.Application, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	if job.EmployerID != employerID {
		return nil, apperr.Forbidden("Not authorized")
	}

	var applications []models.Application
	err = s.DB.Where("job_id = ?", jobID).
		Preload("Applicant", applicantSummary).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return applications, nil
}

// SetStatus overwrites the application status. Last write wins; any status
// may follow any other.
func (s *ApplicationService) SetStatus(employerID, applicationID uuid.UUID, status string) (*models.Application, error) {
	if e := ValidateStatus(status); e != nil {
		return nil, e
	}

	var application models.Application
	err := s.DB.Preload("Job").First(&application, "id = ?", applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Application not found")
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	if application.Job == nil || application.Job.EmployerID != employerID {
		return nil, apperr.Forbidden("Not authorized")
	}

	application.Status = models.ApplicationStatus(status)
	if err := s.DB.Model(&application).Update("status", application.Status).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return &application, nil
}
