package training

import "math"

// MSE is the mean squared error between observed and predicted fares
func MSE(yTrue, yPred []float32) float64 {
	n := float64(len(yTrue))
	if n == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		d := float64(yPred[i] - yTrue[i])
		s += d * d
	}
	return s / n
}

// RMSE is the root mean squared error
func RMSE(yTrue, yPred []float32) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// MAE is the mean absolute error
func MAE(yTrue, yPred []float32) float64 {
	n := float64(len(yTrue))
	if n == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		s += math.Abs(float64(yPred[i] - yTrue[i]))
	}
	return s / n
}

// R2 is the coefficient of determination
func R2(yTrue, yPred []float32) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	m := 0.0
	for _, v := range yTrue {
		m += float64(v)
	}
	m /= float64(len(yTrue))

	ssTot := 0.0
	ssRes := 0.0
	for i := range yTrue {
		d := float64(yTrue[i]) - m
		ssTot += d * d
		r := float64(yTrue[i] - yPred[i])
		ssRes += r * r
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
