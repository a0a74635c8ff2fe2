package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// Profile holds the public profile nested on a User. Stored as a JSON column
// so the shape can grow without migrations.
type Profile struct {
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Location   string   `json:"location,omitempty"`
	Company    string   `json:"company,omitempty"` // for employers
	Website    string   `json:"website,omitempty"`
}

// User is the identity record behind the (identityId, role) capability.
// Tokens are issued elsewhere; this table exists for profile annotation and
// ownership references.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Role     Role    `gorm:"not null" json:"role"`
	Profile  Profile `gorm:"serializer:json" json:"profile"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type JobType string

const (
	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance:
		return true
	}
	return false
}

type Salary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Title               string     `gorm:"not null" json:"title"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	Requirements        []string   `gorm:"serializer:json" json:"requirements,omitempty"`
	Location            string     `gorm:"not null" json:"location"`
	JobType             JobType    `gorm:"not null" json:"jobType"`
	Salary              *Salary    `gorm:"serializer:json" json:"salary,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsActive            bool       `gorm:"default:true" json:"isActive"`

	// Write-once owner reference. Never changed after creation.
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index" json:"employerId"`
	// Association: GORM needs Preload() to fill this
	Employer *User `json:"employer,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application links an applicant to a job. The composite unique index is the
// source of truth for the one-application-per-(job, applicant) rule; the
// service-level existence check is only a fast path.
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"jobId"`
	Job         *Job      `json:"job,omitempty"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicantId"`
	Applicant   *User     `json:"applicant,omitempty"`

	CoverLetter string            `gorm:"type:text;not null" json:"coverLetter"`
	Resume      string            `json:"resume,omitempty"`
	Status      ApplicationStatus `gorm:"default:'pending'" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"appliedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
