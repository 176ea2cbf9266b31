package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/fares-backend-go/internal/service"
	"github.com/jengzang/fares-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests for ingestion jobs
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// StartJobRequest is the body of POST /api/v1/ingest
type StartJobRequest struct {
	Source        string `json:"source" binding:"required"`
	PartitionSize int    `json:"partition_size"`
}

// StartJob handles POST /api/v1/ingest
func (h *IngestHandler) StartJob(c *gin.Context) {
	var req StartJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "source is required")
		return
	}

	job, err := h.service.StartJob(req.Source, req.PartitionSize)
	if err != nil {
		response.InternalError(c, "Failed to start ingestion job")
		return
	}
	response.Accepted(c, job)
}

// GetJob handles GET /api/v1/ingest/jobs/:id
func (h *IngestHandler) GetJob(c *gin.Context) {
	job, err := h.service.GetJob(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get job")
		return
	}
	if job == nil {
		response.NotFound(c, "Job not found")
		return
	}
	response.Success(c, job)
}

// ListJobs handles GET /api/v1/ingest/jobs
func (h *IngestHandler) ListJobs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	jobs, err := h.service.ListJobs(c.Query("status"), limit)
	if err != nil {
		response.InternalError(c, "Failed to list jobs")
		return
	}
	response.Success(c, gin.H{"data": jobs, "count": len(jobs)})
}
