package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/fares-backend-go/internal/models"
)

// Sentinel is substituted for missing or unparseable numeric values. It is
// a placeholder for "unknown", distinguishable from legitimate values only
// by convention; the outlier bounds exclude it from training data.
const Sentinel = -1

// timestampLayouts are tried in order when parsing textual timestamps
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Normalize maps a raw row onto the canonical schema: header names are
// trimmed, lowercased and alias-mapped, columns absent from the schema are
// dropped, and every retained column is parsed to its declared type.
// Normalize never rejects a row; dirty values become the sentinel and are
// left for the outlier filter to judge.
func Normalize(raw RawRecord, aliases map[string]string) models.TripRecord {
	vals := make(map[string]string, len(Schema))
	for k, v := range raw {
		key := strings.ToLower(strings.TrimSpace(k))
		if canon, ok := aliases[key]; ok {
			key = canon
		}
		if _, ok := Schema[key]; !ok {
			continue
		}
		vals[key] = v
	}

	return models.TripRecord{
		FareAmount:       parseFloat32(vals["fare_amount"]),
		PickupDatetime:   parseTimestamp(vals["pickup_datetime"]),
		DropoffDatetime:  parseTimestamp(vals["dropoff_datetime"]),
		PassengerCount:   parseInt32(vals["passenger_count"]),
		RateCode:         parseInt32(vals["rate_code"]),
		TripDistance:     parseFloat32(vals["trip_distance"]),
		PickupLongitude:  parseFloat32(vals["pickup_longitude"]),
		PickupLatitude:   parseFloat32(vals["pickup_latitude"]),
		DropoffLongitude: parseFloat32(vals["dropoff_longitude"]),
		DropoffLatitude:  parseFloat32(vals["dropoff_latitude"]),
	}
}

// NormalizeBatch normalizes every row of a partition
func NormalizeBatch(batch []RawRecord, aliases map[string]string) []models.TripRecord {
	out := make([]models.TripRecord, len(batch))
	for i, raw := range batch {
		out[i] = Normalize(raw, aliases)
	}
	return out
}

func parseFloat32(s string) float32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sentinel
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Sentinel
	}
	return float32(v)
}

func parseInt32(s string) int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sentinel
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(v)
	}
	// Some exports carry counts as "1.0"
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Sentinel
	}
	return int32(v)
}

// parseTimestamp returns Unix milliseconds, or the sentinel when the value
// is missing or matches no known layout.
func parseTimestamp(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sentinel
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return Sentinel
}
