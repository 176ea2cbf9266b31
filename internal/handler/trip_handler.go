package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/service"
	"github.com/jengzang/fares-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for feature rows
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	trips, total, err := h.service.GetTrips(filter)
	if err != nil {
		response.InternalError(c, "Failed to get trips")
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// GetStatistics handles GET /api/v1/trips/stats
func (h *TripHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics()
	if err != nil {
		response.InternalError(c, "Failed to compute statistics")
		return
	}
	response.Success(c, stats)
}

// GetFareDistribution handles GET /api/v1/trips/stats/fares
func (h *TripHandler) GetFareDistribution(c *gin.Context) {
	dist, err := h.service.GetFareDistribution()
	if err != nil {
		response.InternalError(c, "Failed to compute fare distribution")
		return
	}
	response.Success(c, dist)
}

// GetHeatmap handles GET /api/v1/trips/heatmap
func (h *TripHandler) GetHeatmap(c *gin.Context) {
	var filter models.HeatmapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	heatmap, err := h.service.GetHeatmap(filter)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, heatmap)
}
