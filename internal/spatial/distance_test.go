package spatial

import (
	"math"
	"testing"
)

func TestHaversineKm_IdenticalPoints(t *testing.T) {
	if d := HaversineKm(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("distance = %v, want exactly 0", d)
	}
}

func TestHaversineKm_QuarterGreatCircle(t *testing.T) {
	// (0,0) to (0,90): a quarter of the circumference at R = 6371
	want := math.Pi / 2 * EarthRadiusKm // 10007.543...
	got := HaversineKm(0, 0, 0, 90)
	if math.Abs(got-want) > 0.1 {
		t.Errorf("distance = %v, want %v", got, want)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := HaversineKm(40.7128, -74.0060, 40.7614, -73.9776)
	b := HaversineKm(40.7614, -73.9776, 40.7128, -74.0060)
	if a != b {
		t.Errorf("asymmetric: %v vs %v", a, b)
	}
	if a < 5 || a > 6.5 {
		t.Errorf("Union Square to Midtown = %v km, expected roughly 5.6", a)
	}
}

func TestBoundingRect_NormalizesCorners(t *testing.T) {
	rect := BoundingRect(41, -73, 40, -75) // swapped corners
	if !RectContains(rect, 40.5, -74) {
		t.Error("rect should contain interior point after corner normalization")
	}
	if RectContains(rect, 39, -74) {
		t.Error("rect should not contain point south of it")
	}
}

func TestValidLatLng(t *testing.T) {
	if !ValidLatLng(40.7, -74.0) {
		t.Error("valid coordinates reported invalid")
	}
	if ValidLatLng(91, 0) {
		t.Error("latitude 91 reported valid")
	}
}
