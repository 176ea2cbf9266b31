package service

import (
	"fmt"

	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/repository"
	"github.com/jengzang/fares-backend-go/internal/spatial"
	"github.com/jengzang/fares-backend-go/internal/stats"
)

// TripService handles business logic for feature-row queries
type TripService struct {
	repo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{repo: repo}
}

// GetTrips retrieves feature rows with filtering and pagination
func (s *TripService) GetTrips(filter models.TripFilter) ([]models.FeatureRecord, int64, error) {
	return s.repo.GetTrips(filter)
}

// GetStatistics computes aggregate statistics over the feature rows
func (s *TripService) GetStatistics() (*models.TripStatistics, error) {
	return s.repo.GetStatistics()
}

// GetFareDistribution summarizes the shape of the fare column
func (s *TripService) GetFareDistribution() (*models.FareDistribution, error) {
	fares, err := s.repo.GetFares()
	if err != nil {
		return nil, err
	}

	dist := &models.FareDistribution{Count: int64(len(fares))}
	if len(fares) == 0 {
		return dist, nil
	}

	dist.Mean = stats.Mean(fares)
	dist.StdDev = stats.StdDev(fares)
	dist.Min, dist.Q1, dist.Median, dist.Q3, dist.Max = stats.FiveNumberSummary(fares)

	tails := stats.Percentiles(fares, []float64{95, 99})
	dist.P95, dist.P99 = tails[0], tails[1]

	return dist, nil
}

// GetHeatmap aggregates pickup counts per grid cell. A zero filter means
// the whole dataset; explicit corners must form a valid bounding box.
func (s *TripService) GetHeatmap(filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	hasBox := filter.MinLat != 0 || filter.MaxLat != 0 || filter.MinLon != 0 || filter.MaxLon != 0
	if hasBox {
		if !spatial.ValidLatLng(filter.MinLat, filter.MinLon) || !spatial.ValidLatLng(filter.MaxLat, filter.MaxLon) {
			return nil, fmt.Errorf("invalid bounding box (%v,%v)-(%v,%v)",
				filter.MinLat, filter.MinLon, filter.MaxLat, filter.MaxLon)
		}
		// Normalize swapped corners through the s2 rect before querying
		rect := spatial.BoundingRect(filter.MinLat, filter.MinLon, filter.MaxLat, filter.MaxLon)
		filter.MinLat = rect.Lo().Lat.Degrees()
		filter.MinLon = rect.Lo().Lng.Degrees()
		filter.MaxLat = rect.Hi().Lat.Degrees()
		filter.MaxLon = rect.Hi().Lng.Degrees()
	}

	cells, err := s.repo.GetHeatmap(filter)
	if err != nil {
		return nil, err
	}

	resp := &models.HeatmapResponse{
		Cells: cells,
		Count: len(cells),
	}
	if len(cells) == 0 {
		return resp, nil
	}

	resp.MaxCount = cells[0].Count
	resp.MinCount = cells[0].Count
	for _, c := range cells {
		if c.Count > resp.MaxCount {
			resp.MaxCount = c.Count
		}
		if c.Count < resp.MinCount {
			resp.MinCount = c.Count
		}
	}
	for i := range resp.Cells {
		resp.Cells[i].Intensity = float64(resp.Cells[i].Count) / float64(resp.MaxCount)
	}

	return resp, nil
}
