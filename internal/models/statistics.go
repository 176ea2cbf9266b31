package models

// TripStatistics represents aggregate statistics over the feature rows
type TripStatistics struct {
	TotalRows int64 `json:"total_rows"`

	// Fare (the prediction target)
	FareMin  float64 `json:"fare_min"`
	FareMax  float64 `json:"fare_max"`
	FareMean float64 `json:"fare_mean"`

	// Trip geometry
	MeanHDistanceKm float64 `json:"mean_h_distance_km"`
	MeanDiffMS      float64 `json:"mean_diff_ms"`

	// Temporal spread
	WeekendRows  int64   `json:"weekend_rows"`
	WeekendShare float64 `json:"weekend_share"` // 0-1
	YearMin      int     `json:"year_min"`
	YearMax      int     `json:"year_max"`
}

// FareDistribution represents the shape of the fare column
type FareDistribution struct {
	Count   int64   `json:"count"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
	P95     float64 `json:"p95"`
	P99     float64 `json:"p99"`
}

// PipelineStats represents row accounting for one pipeline invocation
type PipelineStats struct {
	RowsIn      int64 `json:"rows_in"`
	RowsKept    int64 `json:"rows_kept"`
	RowsDropped int64 `json:"rows_dropped"`
}
