// Package training defines the model-fitting collaborator consumed by the
// training service. The service depends only on the Trainer and Model
// interfaces; a distributed regressor farm and the in-process baseline are
// interchangeable behind them.
package training

import "errors"

// Model predicts fares from all-float32 feature vectors
type Model interface {
	Predict(X [][]float32) []float32
}

// Trainer fits a Model on feature vectors and a float32 target
type Trainer interface {
	Fit(X [][]float32, y []float32) (Model, error)
	Name() string
}

// ErrNoData is returned when Fit is called with an empty training set
var ErrNoData = errors.New("training: empty training set")
