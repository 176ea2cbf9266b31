package pipeline

import (
	"github.com/jengzang/fares-backend-go/internal/models"
)

// Bounds defines the domain-valid ranges for a trip row. All bounds are
// exclusive; a row sitting exactly on a limit is dropped.
type Bounds struct {
	FareMin      float32
	FareMax      float32
	PassengerMin int32
	PassengerMax int32
	LonMin       float32 // applies to pickup and dropoff longitude
	LonMax       float32
	LatMin       float32 // applies to pickup and dropoff latitude
	LatMax       float32
}

// DefaultBounds are the stock ranges for NYC taxi exports
var DefaultBounds = Bounds{
	FareMin:      0,
	FareMax:      500,
	PassengerMin: 0,
	PassengerMax: 6,
	LonMin:       -75,
	LonMax:       -73,
	LatMin:       40,
	LatMax:       42,
}

// Keep reports whether the row satisfies every bound. The predicates form a
// single conjunction; failing any one excludes the row entirely.
func (b Bounds) Keep(rec models.TripRecord) bool {
	return rec.FareAmount > b.FareMin && rec.FareAmount < b.FareMax &&
		rec.PassengerCount > b.PassengerMin && rec.PassengerCount < b.PassengerMax &&
		rec.PickupLongitude > b.LonMin && rec.PickupLongitude < b.LonMax &&
		rec.DropoffLongitude > b.LonMin && rec.DropoffLongitude < b.LonMax &&
		rec.PickupLatitude > b.LatMin && rec.PickupLatitude < b.LatMax &&
		rec.DropoffLatitude > b.LatMin && rec.DropoffLatitude < b.LatMax
}

// FilterOutliers retains only rows inside the bounds. Rows are dropped
// silently; callers observe the change through row counts only.
func FilterOutliers(recs []models.TripRecord, b Bounds) []models.TripRecord {
	kept := make([]models.TripRecord, 0, len(recs))
	for _, rec := range recs {
		if b.Keep(rec) {
			kept = append(kept, rec)
		}
	}
	return kept
}
