package stats

import (
	"math"
	"testing"
)

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Mean(values); got != 5 {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got := StdDev(values); got != 2 {
		t.Errorf("StdDev = %v, want 2", got)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{3, 1, 2, 4, 5} // unsorted on purpose
	if got := Quantile(values, 0.5); got != 3 {
		t.Errorf("median = %v, want 3", got)
	}
	if got := Quantile(values, 0); got != 1 {
		t.Errorf("q0 = %v, want 1", got)
	}
	if got := Quantile(values, 1); got != 5 {
		t.Errorf("q1 = %v, want 5", got)
	}
	// Interpolated rank: 0.25 * 4 = index 1 exactly
	if got := Quantile(values, 0.25); got != 2 {
		t.Errorf("q0.25 = %v, want 2", got)
	}
	// Interpolation between ranks
	if got := Quantile([]float64{1, 2}, 0.5); got != 1.5 {
		t.Errorf("interpolated median = %v, want 1.5", got)
	}
}

func TestPercentiles(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	got := Percentiles(values, []float64{0, 50, 100})
	want := []float64{10, 30, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("percentile[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFiveNumberSummary(t *testing.T) {
	min, q1, median, q3, max := FiveNumberSummary([]float64{1, 2, 3, 4, 5})
	if min != 1 || max != 5 || median != 3 || q1 != 2 || q3 != 4 {
		t.Errorf("summary = %v %v %v %v %v, want 1 2 3 4 5", min, q1, median, q3, max)
	}
}

func TestEmptyInputs(t *testing.T) {
	if Mean(nil) != 0 || StdDev(nil) != 0 || Quantile(nil, 0.5) != 0 {
		t.Error("empty inputs should yield 0")
	}
	if got := Percentiles(nil, []float64{50}); len(got) != 1 || !almostZero(got[0]) {
		t.Errorf("Percentiles(nil) = %v, want [0]", got)
	}
}

func almostZero(v float64) bool { return math.Abs(v) < 1e-12 }
