package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobboardhq/jobboard-api/internal/dtos"
	"github.com/jobboardhq/jobboard-api/internal/middleware"
	"github.com/jobboardhq/jobboard-api/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
	}
}

// Apply is the POST /applications endpoint (job seeker only)
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	application, err := h.ApplicationService.Apply(middleware.Identity(c).ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// ListMine is the GET /applications/me endpoint
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.ApplicationService.ListMine(middleware.Identity(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListForJob is the GET /applications/job/:jobId endpoint (owning employer only)
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	applications, err := h.ApplicationService.ListForJob(middleware.Identity(c).ID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// SetStatus is the PUT /applications/:id/status endpoint (owning employer only)
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	application, err := h.ApplicationService.SetStatus(middleware.Identity(c).ID, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
