package pipeline

import (
	"math"
	"time"

	"github.com/jengzang/fares-backend-go/internal/models"
	"github.com/jengzang/fares-backend-go/internal/spatial"
)

// Derive extends a cleaned, filtered row with the derived feature columns.
// The two timestamp columns are consumed here: their calendar parts and the
// millisecond diff replace them in the output.
//
// This is a one-shot transformation; feeding derived output back through it
// is not supported.
func Derive(rec models.TripRecord) models.FeatureRecord {
	pickup := time.UnixMilli(rec.PickupDatetime).UTC()
	dow := dayOfWeek(pickup.Day(), int(pickup.Month()), pickup.Year())

	return models.FeatureRecord{
		FareAmount:       rec.FareAmount,
		PassengerCount:   rec.PassengerCount,
		RateCode:         rec.RateCode,
		TripDistance:     rec.TripDistance,
		PickupLongitude:  rec.PickupLongitude,
		PickupLatitude:   rec.PickupLatitude,
		DropoffLongitude: rec.DropoffLongitude,
		DropoffLatitude:  rec.DropoffLatitude,

		Hour:  int32(pickup.Hour()),
		Year:  int32(pickup.Year()),
		Month: int32(pickup.Month()),
		Day:   int32(pickup.Day()),

		Diff: rec.DropoffDatetime - rec.PickupDatetime,

		PickupLatitudeR:   bucket(rec.PickupLatitude),
		PickupLongitudeR:  bucket(rec.PickupLongitude),
		DropoffLatitudeR:  bucket(rec.DropoffLatitude),
		DropoffLongitudeR: bucket(rec.DropoffLongitude),

		HDistance: float32(spatial.HaversineKm(
			float64(rec.PickupLatitude), float64(rec.PickupLongitude),
			float64(rec.DropoffLatitude), float64(rec.DropoffLongitude))),

		DayOfWeek: dow,
		IsWeekend: dow < 2,
	}
}

// DeriveBatch derives features for every row of a partition
func DeriveBatch(recs []models.TripRecord) []models.FeatureRecord {
	out := make([]models.FeatureRecord, len(recs))
	for i, rec := range recs {
		out[i] = Derive(rec)
	}
	return out
}

// bucket floors a coordinate to its 0.01-degree grid cell. Floor semantics,
// not truncation: negative coordinates round toward negative infinity.
func bucket(v float32) float32 {
	return float32(math.Floor(float64(v)/0.01) * 0.01)
}

// dayOfWeek computes a 0-6 weekday value via a Zeller-style congruence.
// The century term is fixed at 20, so the result is only meaningful for
// pickup years 2000-2099.
func dayOfWeek(day, month, year int) int32 {
	shift := 0
	if month < 3 {
		shift = month
		year--
	}
	y := year - 2000
	const c = 20
	m := month + shift + 1
	v := day + int(math.Floor(2.6*float64(m))) + y + floorDiv(y, 4) + floorDiv(c, 4) - 2*c
	return int32(((v % 7) + 7) % 7)
}

// floorDiv divides rounding toward negative infinity (Go's / truncates)
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
