package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineKm calculates the great-circle distance between two points in
// kilometers using the closed-form haversine formula. The model feature
// column is built from this exact expression (including R = 6371), so it is
// kept hand-rolled for bit-comparable output across runs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p := math.Pi / 180
	lat1 *= p
	lon1 *= p
	lat2 *= p
	lon2 *= p

	dlat := (lat2 - lat1) / 2
	dlon := (lon2 - lon1) / 2
	a := math.Sin(dlat)*math.Sin(dlat) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon)*math.Sin(dlon)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// BoundingRect builds an s2 rectangle from corner coordinates, normalizing
// swapped corners.
func BoundingRect(minLat, minLon, maxLat, maxLon float64) s2.Rect {
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return s2.RectFromLatLng(s2.LatLngFromDegrees(minLat, minLon)).
		AddPoint(s2.LatLngFromDegrees(maxLat, maxLon))
}

// RectContains reports whether the rectangle contains the point
func RectContains(rect s2.Rect, lat, lon float64) bool {
	return rect.ContainsLatLng(s2.LatLngFromDegrees(lat, lon))
}

// ValidLatLng reports whether the pair is a normalized latitude/longitude
func ValidLatLng(lat, lon float64) bool {
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}
