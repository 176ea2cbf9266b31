package training

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RandomForestRegressor bags variance-reducing regression trees over
// bootstrap samples of the training rows and predicts the mean of the tree
// outputs. Trees grow concurrently; every source of randomness is seeded,
// so a fit is reproducible.
type RandomForestRegressor struct {
	NEstimators     int // trees to grow, default 50
	MaxDepth        int // root depth 0, default 10
	MinSamplesSplit int // minimum rows to attempt a split, default 5
	MaxFeatures     int // features tried per split, default p/3
	Seed            int64
}

// Name returns the trainer name recorded on training runs
func (RandomForestRegressor) Name() string { return "random_forest" }

type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
	maxFeatures     int
}

// Fit grows the forest
func (rf RandomForestRegressor) Fit(X [][]float32, y []float32) (Model, error) {
	if len(X) == 0 {
		return nil, ErrNoData
	}

	n := len(X)
	p := len(X[0])

	nTrees := rf.NEstimators
	if nTrees <= 0 {
		nTrees = 50
	}
	cfg := treeConfig{
		maxDepth:        rf.MaxDepth,
		minSamplesSplit: rf.MinSamplesSplit,
		maxFeatures:     rf.MaxFeatures,
	}
	if cfg.maxDepth <= 0 {
		cfg.maxDepth = 10
	}
	if cfg.minSamplesSplit < 2 {
		cfg.minSamplesSplit = 5
	}
	if cfg.maxFeatures <= 0 || cfg.maxFeatures > p {
		cfg.maxFeatures = (p + 2) / 3
	}

	trees := make([]*regNode, nTrees)
	var wg sync.WaitGroup
	for i := range trees {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			// Per-tree source so trees never contend on shared state
			rnd := rand.New(rand.NewSource(rf.Seed + int64(idx)))
			sample := make([]int, n)
			for j := range sample {
				sample[j] = rnd.Intn(n)
			}
			trees[idx] = growTree(X, y, sample, 0, cfg, rnd)
		}(i)
	}
	wg.Wait()

	return &forestModel{trees: trees}, nil
}

// regNode is one node of a regression tree; leaves have no children
type regNode struct {
	feature   int
	threshold float32
	left      *regNode
	right     *regNode
	value     float32 // mean target of the rows that reached this node
}

func growTree(X [][]float32, y []float32, idx []int, depth int, cfg treeConfig, rnd *rand.Rand) *regNode {
	node := &regNode{value: meanAt(y, idx)}
	if depth >= cfg.maxDepth || len(idx) < cfg.minSamplesSplit {
		return node
	}

	feature, threshold, ok := bestSplit(X, y, idx, cfg.maxFeatures, rnd)
	if !ok {
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return node
	}

	node.feature = feature
	node.threshold = threshold
	node.left = growTree(X, y, left, depth+1, cfg, rnd)
	node.right = growTree(X, y, right, depth+1, cfg, rnd)
	return node
}

// bestSplit scans a random feature subset for the threshold minimizing the
// summed squared error of the two sides. ok is false when every sampled
// feature is constant across the rows.
func bestSplit(X [][]float32, y []float32, idx []int, maxFeatures int, rnd *rand.Rand) (feature int, threshold float32, ok bool) {
	bestSSE := math.Inf(1)

	n := len(idx)
	order := make([]int, n)
	sum := make([]float64, n+1)
	sumSq := make([]float64, n+1)

	for _, f := range rnd.Perm(len(X[0]))[:maxFeatures] {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

		for k, i := range order {
			v := float64(y[i])
			sum[k+1] = sum[k] + v
			sumSq[k+1] = sumSq[k] + v*v
		}

		for k := 1; k < n; k++ {
			lo, hi := X[order[k-1]][f], X[order[k]][f]
			if lo == hi {
				continue
			}
			leftSSE := sumSq[k] - sum[k]*sum[k]/float64(k)
			rightSum := sum[n] - sum[k]
			rightSSE := (sumSq[n] - sumSq[k]) - rightSum*rightSum/float64(n-k)
			if sse := leftSSE + rightSSE; sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (lo + hi) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func meanAt(y []float32, idx []int) float32 {
	sum := 0.0
	for _, i := range idx {
		sum += float64(y[i])
	}
	return float32(sum / float64(len(idx)))
}

type forestModel struct {
	trees []*regNode
}

func (m *forestModel) Predict(X [][]float32) []float32 {
	out := make([]float32, len(X))
	for i, row := range X {
		sum := 0.0
		for _, t := range m.trees {
			sum += float64(t.predict(row))
		}
		out[i] = float32(sum / float64(len(m.trees)))
	}
	return out
}

func (n *regNode) predict(row []float32) float32 {
	for n.left != nil {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
