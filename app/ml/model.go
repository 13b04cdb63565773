// Package ml trains and applies the logistic-regression failure model that
// backs the hybrid risk classification. Training is plain batch gradient
// descent with fixed settings, so the same dataset always produces the same
// weights.
package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

const (
	learningRate = 0.5
	epochs       = 1000
)

// failingGrade is the final-period grade below which a student counts as
// failed for training purposes.
const failingGrade = 10

// featureNames is the fixed model input order. Persisted models are
// validated against it on load.
var featureNames = []string{"failures", "absences", "studytime", "G1", "G2"}

// ErrNoTargets reports a training set in which no record carries a final
// grade, leaving nothing to learn from.
var ErrNoTargets = errors.New("no records carry a final grade (G3)")

// Model is a trained logistic regression predicting final-period failure
// from five dataset features. Inputs are min-max scaled with the ranges
// captured at training time.
type Model struct {
	ID          string    `json:"id"`
	Features    []string  `json:"features"`
	Weights     []float64 `json:"weights"`
	Bias        float64   `json:"bias"`
	FeatureMins []float64 `json:"feature_mins"`
	FeatureMaxs []float64 `json:"feature_maxs"`
	TrainedAt   time.Time `json:"trained_at"`
	Samples     int       `json:"samples"`
	AtRisk      int       `json:"at_risk"`
	Accuracy    float64   `json:"training_accuracy"`
}

// Train fits a model on every record that has a final grade. Records
// without one are skipped; if none remain it returns ErrNoTargets.
func Train(records []models.StudentRecord) (*Model, error) {
	var inputs [][]float64
	var targets []float64
	for _, rec := range records {
		if rec.G3 == nil {
			continue
		}
		r := rec.Clamp()
		inputs = append(inputs, featureVector(r))
		if *r.G3 < failingGrade {
			targets = append(targets, 1)
		} else {
			targets = append(targets, 0)
		}
	}
	if len(inputs) == 0 {
		return nil, ErrNoTargets
	}

	mins, maxs := featureRanges(inputs)
	for i := range inputs {
		inputs[i] = scaleVector(inputs[i], mins, maxs)
	}

	weights := make([]float64, len(featureNames))
	bias := 0.0
	n := float64(len(inputs))
	for epoch := 0; epoch < epochs; epoch++ {
		gradW := make([]float64, len(weights))
		gradB := 0.0
		for i, x := range inputs {
			diff := sigmoid(dot(weights, x)+bias) - targets[i]
			for j := range weights {
				gradW[j] += diff * x[j]
			}
			gradB += diff
		}
		for j := range weights {
			weights[j] -= learningRate * gradW[j] / n
		}
		bias -= learningRate * gradB / n
	}

	m := &Model{
		ID:          uuid.NewString(),
		Features:    append([]string(nil), featureNames...),
		Weights:     weights,
		Bias:        bias,
		FeatureMins: mins,
		FeatureMaxs: maxs,
		TrainedAt:   time.Now().UTC(),
		Samples:     len(inputs),
	}

	correct := 0
	for i, x := range inputs {
		predicted := sigmoid(dot(weights, x)+bias) >= 0.5
		if predicted == (targets[i] == 1) {
			correct++
		}
		if targets[i] == 1 {
			m.AtRisk++
		}
	}
	m.Accuracy = float64(correct) / n

	return m, nil
}

// Probability returns the predicted failure probability for one record.
func (m *Model) Probability(rec models.StudentRecord) float64 {
	x := scaleVector(featureVector(rec.Clamp()), m.FeatureMins, m.FeatureMaxs)
	return sigmoid(dot(m.Weights, x) + m.Bias)
}

// Save writes the model as JSON, creating the directory if needed.
func (m *Model) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a model from disk and checks that it was trained on the
// expected feature set.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if len(m.Weights) != len(featureNames) ||
		len(m.FeatureMins) != len(featureNames) ||
		len(m.FeatureMaxs) != len(featureNames) {
		return nil, fmt.Errorf("model %s: unexpected feature count %d", path, len(m.Weights))
	}
	if len(m.Features) != len(featureNames) {
		return nil, fmt.Errorf("model %s: unexpected feature count %d", path, len(m.Features))
	}
	for i, name := range m.Features {
		if name != featureNames[i] {
			return nil, fmt.Errorf("model %s: unexpected feature %q", path, name)
		}
	}
	return &m, nil
}

func featureVector(r models.StudentRecord) []float64 {
	return []float64{
		float64(r.Failures),
		float64(r.Absences),
		float64(r.StudyTime),
		float64(r.G1),
		float64(r.G2),
	}
}

func featureRanges(inputs [][]float64) (mins, maxs []float64) {
	mins = append([]float64(nil), inputs[0]...)
	maxs = append([]float64(nil), inputs[0]...)
	for _, x := range inputs[1:] {
		for j, v := range x {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	return mins, maxs
}

// scaleVector min-max normalizes one feature vector. Features that were
// constant across the training set map to zero.
func scaleVector(x, mins, maxs []float64) []float64 {
	scaled := make([]float64, len(x))
	for j := range x {
		if span := maxs[j] - mins[j]; span > 0 {
			scaled[j] = (x[j] - mins[j]) / span
		}
	}
	return scaled
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
