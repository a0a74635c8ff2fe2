package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard-api/internal/apperr"
	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

type JobSearchResult struct {
	Jobs        []models.Job `json:"jobs"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// employerPublic limits a preloaded employer to its public fields.
func employerPublic(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "profile")
}

// searchConditions builds a fresh filtered query; Count and Find must not
// share a chain.
func (s *JobService) searchConditions(q *dtos.JobSearchQuery) *gorm.DB {
	query := s.DB.Model(&models.Job{}).Where("is_active = ?", true)

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}
	if q.Location != "" {
		query = query.Where("lower(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.JobType != "" {
		query = query.Where("job_type = ?", q.JobType)
	}
	return query
}

// Search returns active jobs matching the filters, newest first, with
// 1-indexed pagination.
func (s *JobService) Search(q *dtos.JobSearchQuery) (*JobSearchResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.searchConditions(q).Count(&total).Error; err != nil {
		return nil, apperr.Store(err)
	}

	var jobs []models.Job
	err := s.searchConditions(q).
		Preload("Employer", employerPublic).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &JobSearchResult{
		Jobs:        jobs,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// GetByID returns the job regardless of its isActive flag.
func (s *JobService) GetByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Employer", employerPublic).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &job, nil
}

func (s *JobService) Create(employerID uuid.UUID, req *dtos.JobCreationRequest) (*models.Job, error) {
	if e := ValidateNewJob(req); e != nil {
		return nil, e
	}

	job := &models.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		JobType:             models.JobType(req.JobType),
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
		EmployerID:          employerID,
	}
	if req.Salary != nil {
		job.Salary = &models.Salary{Min: req.Salary.Min, Max: req.Salary.Max}
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return job, nil
}

// Update merges the provided fields into the stored job. The employer
// reference is not mergeable.
func (s *JobService) Update(employerID, jobID uuid.UUID, req *dtos.JobUpdateRequest) (*models.Job, error) {
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

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		jt := models.JobType(*req.JobType)
		if !jt.Valid() {
			return nil, apperr.Validation("Job type must be one of: full-time, part-time, contract, freelance")
		}
		job.JobType = jt
	}
	if req.Salary != nil {
		job.Salary = &models.Salary{Min: req.Salary.Min, Max: req.Salary.Max}
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return &job, nil
}

func (s *JobService) Delete(employerID, jobID uuid.UUID) error {
	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Job not found")
	}
	if err != nil {
		return apperr.Store(err)
	}
	if job.EmployerID != employerID {
		return apperr.Forbidden("Not authorized")
	}

	if err := s.DB.Delete(&job).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

// ListByEmployer returns the employer's own jobs, active or not, newest first.
func (s *JobService) ListByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return jobs, nil
}
