package training

import "math/rand"

// TrainTestSplit splits X, y into train and test sets by ratio. The shuffle
// is seeded so a run can be reproduced exactly.
func TrainTestSplit(X [][]float32, y []float32, testRatio float64, seed int64) (XTrain, XTest [][]float32, yTrain, yTest []float32) {
	n := len(X)
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	nTest := int(float64(n) * testRatio)

	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			yTest = append(yTest, y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			yTrain = append(yTrain, y[indices[i]])
		}
	}
	return
}
