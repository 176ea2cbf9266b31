package models

// TripRecord is a cleaned taxi trip row in the canonical schema: every
// column present, typed as declared, missing numerics filled with the -1
// sentinel. Timestamps are Unix milliseconds.
type TripRecord struct {
	FareAmount       float32 `json:"fare_amount" db:"fare_amount"`
	PickupDatetime   int64   `json:"pickup_datetime" db:"pickup_datetime"`
	DropoffDatetime  int64   `json:"dropoff_datetime" db:"dropoff_datetime"`
	PassengerCount   int32   `json:"passenger_count" db:"passenger_count"`
	RateCode         int32   `json:"rate_code" db:"rate_code"`
	TripDistance     float32 `json:"trip_distance" db:"trip_distance"`
	PickupLongitude  float32 `json:"pickup_longitude" db:"pickup_longitude"`
	PickupLatitude   float32 `json:"pickup_latitude" db:"pickup_latitude"`
	DropoffLongitude float32 `json:"dropoff_longitude" db:"dropoff_longitude"`
	DropoffLatitude  float32 `json:"dropoff_latitude" db:"dropoff_latitude"`
}

// FeatureRecord is a TripRecord after feature derivation. The two source
// timestamp columns are consumed by the deriver and not carried over; the
// calendar parts, the millisecond diff and the spatial features replace them.
type FeatureRecord struct {
	ID    int64  `json:"id" db:"id"`
	JobID string `json:"job_id,omitempty" db:"job_id"`

	// Carried over from the cleaned record
	FareAmount       float32 `json:"fare_amount" db:"fare_amount"`
	PassengerCount   int32   `json:"passenger_count" db:"passenger_count"`
	RateCode         int32   `json:"rate_code" db:"rate_code"`
	TripDistance     float32 `json:"trip_distance" db:"trip_distance"`
	PickupLongitude  float32 `json:"pickup_longitude" db:"pickup_longitude"`
	PickupLatitude   float32 `json:"pickup_latitude" db:"pickup_latitude"`
	DropoffLongitude float32 `json:"dropoff_longitude" db:"dropoff_longitude"`
	DropoffLatitude  float32 `json:"dropoff_latitude" db:"dropoff_latitude"`

	// Calendar parts decomposed from the pickup timestamp
	Hour  int32 `json:"hour" db:"hour"`
	Year  int32 `json:"year" db:"year"`
	Month int32 `json:"month" db:"month"`
	Day   int32 `json:"day" db:"day"`

	// Dropoff minus pickup, milliseconds
	Diff int64 `json:"diff" db:"diff"`

	// Coordinates floored to 0.01-degree buckets
	PickupLatitudeR   float32 `json:"pickup_latitude_r" db:"pickup_latitude_r"`
	PickupLongitudeR  float32 `json:"pickup_longitude_r" db:"pickup_longitude_r"`
	DropoffLatitudeR  float32 `json:"dropoff_latitude_r" db:"dropoff_latitude_r"`
	DropoffLongitudeR float32 `json:"dropoff_longitude_r" db:"dropoff_longitude_r"`

	// Great-circle pickup->dropoff distance, kilometers
	HDistance float32 `json:"h_distance" db:"h_distance"`

	// 0-6 congruence value; the two lowest values are the weekend
	DayOfWeek int32 `json:"day_of_week" db:"day_of_week"`
	IsWeekend bool  `json:"is_weekend" db:"is_weekend"`
}

// FeatureColumns lists the model input columns in the order produced by
// Features(). fare_amount is the prediction target and is excluded.
var FeatureColumns = []string{
	"passenger_count",
	"rate_code",
	"trip_distance",
	"pickup_longitude",
	"pickup_latitude",
	"dropoff_longitude",
	"dropoff_latitude",
	"hour",
	"year",
	"month",
	"day",
	"diff",
	"pickup_latitude_r",
	"pickup_longitude_r",
	"dropoff_latitude_r",
	"dropoff_longitude_r",
	"h_distance",
	"day_of_week",
	"is_weekend",
}

// Features flattens the record into an all-float32 model input vector,
// ordered as FeatureColumns.
func (f *FeatureRecord) Features() []float32 {
	weekend := float32(0)
	if f.IsWeekend {
		weekend = 1
	}
	return []float32{
		float32(f.PassengerCount),
		float32(f.RateCode),
		f.TripDistance,
		f.PickupLongitude,
		f.PickupLatitude,
		f.DropoffLongitude,
		f.DropoffLatitude,
		float32(f.Hour),
		float32(f.Year),
		float32(f.Month),
		float32(f.Day),
		float32(f.Diff),
		f.PickupLatitudeR,
		f.PickupLongitudeR,
		f.DropoffLatitudeR,
		f.DropoffLongitudeR,
		f.HDistance,
		float32(f.DayOfWeek),
		weekend,
	}
}

// TripsResponse represents a paginated response of feature rows
type TripsResponse struct {
	Data       []FeatureRecord `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
