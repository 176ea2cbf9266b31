package training

// MeanRegressor is the baseline trainer: it predicts the training-set mean
// fare for every input. Useful as a floor to score real regressors against,
// and keeps the service runnable with no external model farm attached.
type MeanRegressor struct{}

// Name returns the trainer name recorded on training runs
func (MeanRegressor) Name() string { return "mean_baseline" }

// Fit computes the target mean
func (MeanRegressor) Fit(X [][]float32, y []float32) (Model, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	sum := 0.0
	for _, v := range y {
		sum += float64(v)
	}
	return &meanModel{mean: float32(sum / float64(len(y)))}, nil
}

type meanModel struct {
	mean float32
}

func (m *meanModel) Predict(X [][]float32) []float32 {
	out := make([]float32, len(X))
	for i := range out {
		out[i] = m.mean
	}
	return out
}
