package models

// TripFilter represents filter parameters for querying feature rows
type TripFilter struct {
	JobID       string  `form:"jobId"`
	MinFare     float64 `form:"minFare"`
	MaxFare     float64 `form:"maxFare"`
	Hour        int     `form:"hour,default=-1"`      // -1 means any
	DayOfWeek   int     `form:"dayOfWeek,default=-1"` // -1 means any
	WeekendOnly bool    `form:"weekendOnly"`
	MinDistance float64 `form:"minDistance"` // h_distance, kilometers
	Year        int     `form:"year"`
	Month       int     `form:"month"`
	Page        int     `form:"page"`
	PageSize    int     `form:"pageSize"`
}

// HeatmapFilter represents filter parameters for pickup-grid queries
type HeatmapFilter struct {
	MinLat   float64 `form:"minLat"`
	MaxLat   float64 `form:"maxLat"`
	MinLon   float64 `form:"minLon"`
	MaxLon   float64 `form:"maxLon"`
	MinCount int     `form:"minCount"` // minimum pickups per cell
	Limit    int     `form:"limit"`    // max cells to return
}

// RunFilter represents filter parameters for listing training runs
type RunFilter struct {
	Status   string `form:"status"` // pending, running, completed, failed
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}
