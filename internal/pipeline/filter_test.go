package pipeline

import (
	"reflect"
	"testing"

	"github.com/jengzang/fares-backend-go/internal/models"
)

// validRecord returns a record inside every default bound
func validRecord() models.TripRecord {
	return models.TripRecord{
		FareAmount:       12.5,
		PassengerCount:   2,
		PickupLongitude:  -73.99,
		PickupLatitude:   40.75,
		DropoffLongitude: -73.98,
		DropoffLatitude:  40.76,
	}
}

func TestBoundsKeep(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.TripRecord)
		keep   bool
	}{
		{"all in range", func(r *models.TripRecord) {}, true},
		{"fare 499.99 kept", func(r *models.TripRecord) { r.FareAmount = 499.99 }, true},
		{"fare 501 dropped", func(r *models.TripRecord) { r.FareAmount = 501 }, false},
		{"fare 500 dropped (exclusive)", func(r *models.TripRecord) { r.FareAmount = 500 }, false},
		{"fare 0 dropped (exclusive)", func(r *models.TripRecord) { r.FareAmount = 0 }, false},
		{"fare sentinel dropped", func(r *models.TripRecord) { r.FareAmount = Sentinel }, false},
		{"passengers 6 dropped (exclusive)", func(r *models.TripRecord) { r.PassengerCount = 6 }, false},
		{"passengers 0 dropped", func(r *models.TripRecord) { r.PassengerCount = 0 }, false},
		{"passengers 5 kept", func(r *models.TripRecord) { r.PassengerCount = 5 }, true},
		{"pickup lon out west", func(r *models.TripRecord) { r.PickupLongitude = -75.5 }, false},
		{"dropoff lon out east", func(r *models.TripRecord) { r.DropoffLongitude = -72.9 }, false},
		{"pickup lat out south", func(r *models.TripRecord) { r.PickupLatitude = 39.9 }, false},
		{"dropoff lat out north", func(r *models.TripRecord) { r.DropoffLatitude = 42.1 }, false},
		{"coord sentinel dropped", func(r *models.TripRecord) { r.PickupLatitude = Sentinel }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			if got := DefaultBounds.Keep(rec); got != tc.keep {
				t.Errorf("Keep = %v, want %v", got, tc.keep)
			}
		})
	}
}

func TestFilterOutliers_NoPartialRepair(t *testing.T) {
	bad := validRecord()
	bad.FareAmount = 501

	kept := FilterOutliers([]models.TripRecord{validRecord(), bad}, DefaultBounds)
	if len(kept) != 1 {
		t.Fatalf("kept %d rows, want 1", len(kept))
	}
	if kept[0].FareAmount != 12.5 {
		t.Errorf("surviving row fare = %v, want 12.5", kept[0].FareAmount)
	}
}

func TestFilterOutliers_Idempotent(t *testing.T) {
	recs := []models.TripRecord{validRecord(), validRecord(), validRecord()}
	recs[1].PassengerCount = 0
	recs[2].DropoffLatitude = 50

	once := FilterOutliers(recs, DefaultBounds)
	twice := FilterOutliers(once, DefaultBounds)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice differs from filtering once: %v vs %v", once, twice)
	}
}
