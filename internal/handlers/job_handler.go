package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/middleware"
	"github.com/jobboardhq/jobboard-api/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		JobService: j,
	}
}

// Search is the GET /jobs endpoint
func (h *JobHandler) Search(c *gin.Context) {
	var q dtos.JobSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query: " + err.Error()})
		return
	}

	result, err := h.JobService.Search(&q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID is the GET /jobs/:id endpoint
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	job, err := h.JobService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is the POST /jobs endpoint (employer only)
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(middleware.Identity(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is the PUT /jobs/:id endpoint (owning employer only)
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Update(middleware.Identity(c).ID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /jobs/:id endpoint (owning employer only)
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	if err := h.JobService.Delete(middleware.Identity(c).ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed"})
}

// ListMine is the GET /jobs/employer/me endpoint (employer only)
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.JobService.ListByEmployer(middleware.Identity(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
