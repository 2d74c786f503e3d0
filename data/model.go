package data

// ForestConfig is one hyperparameter configuration for the ensemble
// learner. Zero values mean "use the trainer's default": Mtry defaults
// to a third of the feature count, Trees to ten per feature.
type ForestConfig struct {
	// Mtry is the number of candidate features considered at each split.
	Mtry int
	// MinNodeSize is the minimum number of samples in a leaf node.
	MinNodeSize int
	// Replace selects resampling with replacement.
	Replace bool
	// SampleFraction is the fraction of rows sampled per fit.
	SampleFraction float64
	// Trees is the ensemble size.
	Trees int
	// Seed fixes the learner's sampling when non-zero. Repeated fits
	// leave it zero on purpose to sample the learner's natural variance.
	Seed int64
}

// Grid holds the candidate value sets for each hyperparameter
// dimension. The search enumerates their full Cartesian product.
type Grid struct {
	Mtry           []int
	MinNodeSize    []int
	Replace        []bool
	SampleFraction []float64
}

// Size is the exact number of configurations the grid generates.
func (g *Grid) Size() int {
	return len(g.Mtry) * len(g.MinNodeSize) * len(g.Replace) * len(g.SampleFraction)
}

// GridResult records the outcome of training one grid configuration.
type GridResult struct {
	Config ForestConfig
	// OOBError is the out-of-bag RMSE reported by the learner.
	OOBError float64
	// PctGain is the percentage improvement over the default
	// configuration's error.
	PctGain float64
}

// PredictionResult is one scored test-set restaurant.
type PredictionResult struct {
	SerialNumber string
	Probability  float64
	// Label is 1 iff Probability > 0.5.
	Label int
}
