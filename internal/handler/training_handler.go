package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/service"
	"github.com/jengzang/fares-backend-go/pkg/response"
)

// TrainingHandler handles HTTP requests for training runs
type TrainingHandler struct {
	service *service.TrainingService
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(service *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// StartRunRequest is the body of POST /api/v1/training/runs
type StartRunRequest struct {
	Trainer   string  `json:"trainer"`
	TestRatio float64 `json:"test_ratio"`
	Seed      int64   `json:"seed"`
}

// StartRun handles POST /api/v1/training/runs
func (h *TrainingHandler) StartRun(c *gin.Context) {
	var req StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	run, err := h.service.StartRun(req.Trainer, req.TestRatio, req.Seed)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Accepted(c, run)
}

// GetRun handles GET /api/v1/training/runs/:id
func (h *TrainingHandler) GetRun(c *gin.Context) {
	run, err := h.service.GetRun(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get training run")
		return
	}
	if run == nil {
		response.NotFound(c, "Training run not found")
		return
	}
	response.Success(c, run)
}

// ListRuns handles GET /api/v1/training/runs
func (h *TrainingHandler) ListRuns(c *gin.Context) {
	var filter models.RunFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	runs, total, err := h.service.ListRuns(filter)
	if err != nil {
		response.InternalError(c, "Failed to list training runs")
		return
	}
	response.Success(c, gin.H{"data": runs, "total": total})
}
