package testhelpers

import "testing"

// Model is a func-field fake satisfying mlmodel.TrainedModel.
type Model struct {
	OOBErrorFunc           func() float64
	PredictFunc            func(features [][]float64) []float64
	FeatureImportancesFunc func() []float64
}

func NewModel(t *testing.T) *Model {
	return &Model{
		OOBErrorFunc: func() float64 {
			t.Error("OOBError should not be called")
			return 0
		},
		PredictFunc: func(features [][]float64) []float64 {
			t.Error("Predict should not be called")
			return nil
		},
		FeatureImportancesFunc: func() []float64 {
			t.Error("FeatureImportances should not be called")
			return nil
		},
	}
}

func (m *Model) OOBError() float64 {
	return m.OOBErrorFunc()
}

func (m *Model) Predict(features [][]float64) []float64 {
	return m.PredictFunc(features)
}

func (m *Model) FeatureImportances() []float64 {
	return m.FeatureImportancesFunc()
}
