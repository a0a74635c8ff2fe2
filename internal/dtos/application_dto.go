package dtos

type ApplicationRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter" binding:"required"`
	Resume      string `json:"resume"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
