package training

import (
	"errors"
	"reflect"
	"testing"
)

// stepData is a single-feature target the mean baseline cannot fit: 0 on
// the low half, 100 on the high half.
func stepData() ([][]float32, []float32) {
	X := make([][]float32, 40)
	y := make([]float32, 40)
	for i := range X {
		X[i] = []float32{float32(i)}
		if i >= 20 {
			y[i] = 100
		}
	}
	return X, y
}

func TestRandomForestRegressor_BeatsMeanBaseline(t *testing.T) {
	X, y := stepData()

	forest, err := RandomForestRegressor{Seed: 1}.Fit(X, y)
	if err != nil {
		t.Fatal(err)
	}
	baseline, err := MeanRegressor{}.Fit(X, y)
	if err != nil {
		t.Fatal(err)
	}

	forestMSE := MSE(y, forest.Predict(X))
	baselineMSE := MSE(y, baseline.Predict(X))
	if forestMSE >= baselineMSE {
		t.Errorf("forest MSE = %v, baseline MSE = %v; forest should fit the step", forestMSE, baselineMSE)
	}

	preds := forest.Predict([][]float32{{0}, {39}})
	if preds[0] >= 50 {
		t.Errorf("low-side prediction = %v, want < 50", preds[0])
	}
	if preds[1] <= 50 {
		t.Errorf("high-side prediction = %v, want > 50", preds[1])
	}
}

func TestRandomForestRegressor_Deterministic(t *testing.T) {
	X, y := stepData()

	a, err := RandomForestRegressor{Seed: 7}.Fit(X, y)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomForestRegressor{Seed: 7}.Fit(X, y)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.Predict(X), b.Predict(X)) {
		t.Error("identical seeds produced different forests")
	}
}

func TestRandomForestRegressor_ConstantTarget(t *testing.T) {
	X := [][]float32{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	y := []float32{7, 7, 7, 7}

	model, err := RandomForestRegressor{Seed: 1, NEstimators: 10}.Fit(X, y)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range model.Predict(X) {
		if p != 7 {
			t.Errorf("prediction = %v, want 7", p)
		}
	}
}

func TestRandomForestRegressor_EmptySet(t *testing.T) {
	_, err := RandomForestRegressor{}.Fit(nil, nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}
