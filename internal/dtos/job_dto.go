package dtos

import "time"

type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	JobType     string `json:"jobType" binding:"required"`

	// Optional Fields
	Requirements        []string     `json:"requirements"`
	Salary              *SalaryRange `json:"salary"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline"`
}

// JobUpdateRequest carries a partial update; nil fields are left untouched.
// There is deliberately no employer field, the owner reference is write-once.
type JobUpdateRequest struct {
	Title               *string      `json:"title"`
	Description         *string      `json:"description"`
	Requirements        *[]string    `json:"requirements"`
	Location            *string      `json:"location"`
	JobType             *string      `json:"jobType"`
	Salary              *SalaryRange `json:"salary"`
	ApplicationDeadline *time.Time   `json:"applicationDeadline"`
	IsActive            *bool        `json:"isActive"`
}

type JobSearchQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	JobType  string `form:"jobType"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}
