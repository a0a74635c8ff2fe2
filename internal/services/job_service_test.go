package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobboardhq/jobboard-api/internal/apperr"
	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/models"
)

func TestSearch_OrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	base := time.Now().Add(-time.Hour)
	seedJob(t, db, employer.ID, "Oldest", base)
	seedJob(t, db, employer.ID, "Middle", base.Add(10*time.Minute))
	seedJob(t, db, employer.ID, "Newest", base.Add(20*time.Minute))

	result, err := svc.Search(searchAll())
	require.NoError(t, err)

	require.Len(t, result.Jobs, 3)
	assert.Equal(t, "Newest", result.Jobs[0].Title)
	assert.Equal(t, "Middle", result.Jobs[1].Title)
	assert.Equal(t, "Oldest", result.Jobs[2].Title)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestSearch_ExcludesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	active := seedJob(t, db, employer.ID, "Active", time.Now())
	inactive := seedJob(t, db, employer.ID, "Inactive", time.Now())
	deactivate(t, db, &inactive)

	result, err := svc.Search(searchAll())
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, active.ID, result.Jobs[0].ID)

	// getById still returns the inactive job
	got, err := svc.GetByID(inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestSearch_TextMatchesTitleOrDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	backend := seedJob(t, db, employer.ID, "Backend Engineer", time.Now())
	other := models.Job{
		Title:       "Product Designer",
		Description: "Work with backend teams on tooling",
		Location:    "Berlin",
		JobType:     models.JobTypeContract,
		IsActive:    true,
		EmployerID:  employer.ID,
	}
	require.NoError(t, db.Create(&other).Error)
	seedJob(t, db, employer.ID, "Data Analyst", time.Now())

	result, err := svc.Search(&dtos.JobSearchQuery{Search: "BACKEND", Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, result.Jobs, 2)
	ids := []uuid.UUID{result.Jobs[0].ID, result.Jobs[1].ID}
	assert.Contains(t, ids, backend.ID)
	assert.Contains(t, ids, other.ID)
}

func TestSearch_LocationAndJobTypeFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	job := seedJob(t, db, employer.ID, "Backend Engineer", time.Now())

	result, err := svc.Search(&dtos.JobSearchQuery{JobType: "full-time", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, job.ID, result.Jobs[0].ID)

	result, err = svc.Search(&dtos.JobSearchQuery{JobType: "contract", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Jobs)

	result, err = svc.Search(&dtos.JobSearchQuery{Location: "remo", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)

	result, err = svc.Search(&dtos.JobSearchQuery{Location: "berlin", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Jobs)
}

func TestSearch_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	base := time.Now().Add(-time.Hour)
	titles := []string{"a", "b", "c", "d", "e"}
	for i, title := range titles {
		seedJob(t, db, employer.ID, title, base.Add(time.Duration(i)*time.Minute))
	}

	result, err := svc.Search(&dtos.JobSearchQuery{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	require.Len(t, result.Jobs, 2)
	assert.Equal(t, "c", result.Jobs[0].Title)
	assert.Equal(t, "b", result.Jobs[1].Title)
}

func TestGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	_, err := svc.GetByID(uuid.New())
	requireKind(t, err, apperr.KindNotFound)
}

func TestGetByID_IncludesEmployerProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")
	job := seedJob(t, db, employer.ID, "Backend Engineer", time.Now())

	got, err := svc.GetByID(job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Employer)
	assert.Equal(t, "acme", got.Employer.Name)
	assert.Equal(t, "acme Inc", got.Employer.Profile.Company)
	assert.Empty(t, got.Employer.Password)
}

func TestCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	cases := []struct {
		name string
		req  dtos.JobCreationRequest
	}{
		{"blank title", dtos.JobCreationRequest{Title: "  ", Description: "d", Location: "l", JobType: "full-time"}},
		{"blank description", dtos.JobCreationRequest{Title: "t", Description: "", Location: "l", JobType: "full-time"}},
		{"blank location", dtos.JobCreationRequest{Title: "t", Description: "d", Location: " ", JobType: "full-time"}},
		{"bad job type", dtos.JobCreationRequest{Title: "t", Description: "d", Location: "l", JobType: "intern"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(employer.ID, &tc.req)
			requireKind(t, err, apperr.KindValidation)
		})
	}
}

func TestCreate_SetsOwnerAndActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	job, err := svc.Create(employer.ID, &dtos.JobCreationRequest{
		Title:        "Backend Engineer",
		Description:  "Go services",
		Location:     "Remote",
		JobType:      "full-time",
		Requirements: []string{"Go", "Postgres"},
		Salary:       &dtos.SalaryRange{Min: 90000, Max: 120000},
	})
	require.NoError(t, err)

	assert.Equal(t, employer.ID, job.EmployerID)
	assert.True(t, job.IsActive)
	assert.NotEqual(t, uuid.Nil, job.ID)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, []string{"Go", "Postgres"}, stored.Requirements)
	require.NotNil(t, stored.Salary)
	assert.Equal(t, 90000.0, stored.Salary.Min)
}

func TestUpdate_PartialMerge(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")
	job := seedJob(t, db, employer.ID, "Backend Engineer", time.Now())

	title := "Senior Backend Engineer"
	updated, err := svc.Update(employer.ID, job.ID, &dtos.JobUpdateRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, job.Description, updated.Description)
	assert.Equal(t, job.Location, updated.Location)
	assert.Equal(t, job.EmployerID, updated.EmployerID)
}

func TestUpdate_CanDeactivate(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")
	job := seedJob(t, db, employer.ID, "Backend Engineer", time.Now())

	inactive := false
	_, err := svc.Update(employer.ID, job.ID, &dtos.JobUpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	result, err := svc.Search(searchAll())
	require.NoError(t, err)
	assert.Empty(t, result.Jobs)
}

func TestUpdate_ForbiddenLeavesUnmodified(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	owner := seedUser(t, db, models.RoleEmployer, "acme")
	other := seedUser(t, db, models.RoleEmployer, "globex")
	job := seedJob(t, db, owner.ID, "Backend Engineer", time.Now())

	title := "Hijacked"
	_, err := svc.Update(other.ID, job.ID, &dtos.JobUpdateRequest{Title: &title})
	requireKind(t, err, apperr.KindForbidden)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, "Backend Engineer", stored.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")

	title := "x"
	_, err := svc.Update(employer.ID, uuid.New(), &dtos.JobUpdateRequest{Title: &title})
	requireKind(t, err, apperr.KindNotFound)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	owner := seedUser(t, db, models.RoleEmployer, "acme")
	other := seedUser(t, db, models.RoleEmployer, "globex")
	job := seedJob(t, db, owner.ID, "Backend Engineer", time.Now())

	err := svc.Delete(other.ID, job.ID)
	requireKind(t, err, apperr.KindForbidden)

	require.NoError(t, svc.Delete(owner.ID, job.ID))

	_, err = svc.GetByID(job.ID)
	requireKind(t, err, apperr.KindNotFound)

	err = svc.Delete(owner.ID, job.ID)
	requireKind(t, err, apperr.KindNotFound)
}

func TestListByEmployer(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer, "acme")
	other := seedUser(t, db, models.RoleEmployer, "globex")

	base := time.Now().Add(-time.Hour)
	seedJob(t, db, employer.ID, "First", base)
	second := seedJob(t, db, employer.ID, "Second", base.Add(time.Minute))
	deactivate(t, db, &second)
	seedJob(t, db, other.ID, "Theirs", base.Add(2*time.Minute))

	jobs, err := svc.ListByEmployer(employer.ID)
	require.NoError(t, err)

	// inactive jobs are included, newest first
	require.Len(t, jobs, 2)
	assert.Equal(t, "Second", jobs[0].Title)
	assert.Equal(t, "First", jobs[1].Title)
}
