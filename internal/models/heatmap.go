package models

// HeatmapCell represents one 0.01-degree pickup grid cell
type HeatmapCell struct {
	Lat       float64 `json:"lat"`       // Cell corner (floored pickup latitude)
	Lon       float64 `json:"lon"`       // Cell corner (floored pickup longitude)
	Count     int     `json:"count"`     // Pickups in the cell
	Intensity float64 `json:"intensity"` // Normalized 0-1
	MeanFare  float64 `json:"mean_fare"`
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Cells    []HeatmapCell `json:"cells"`
	Count    int           `json:"count"`
	MaxCount int           `json:"max_count"`
	MinCount int           `json:"min_count"`
}
