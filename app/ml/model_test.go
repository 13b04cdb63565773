package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

// trainingSet returns a cleanly separable dataset: failing students carry
// weak grades, many absences and past failures, passing students the
// opposite.
func trainingSet() []models.StudentRecord {
	var recs []models.StudentRecord
	for i := 0; i < 12; i++ {
		g3 := 4
		recs = append(recs, models.StudentRecord{
			G1: 5, G2: 5, G3: &g3, Absences: 20 + i, StudyTime: 1, Failures: 3,
			FamSup: models.FamSupNo, Medu: 1, Fedu: 1, Dalc: 2, Walc: 3, GoOut: 4,
		})
	}
	for i := 0; i < 12; i++ {
		g3 := 16
		recs = append(recs, models.StudentRecord{
			G1: 17, G2: 18, G3: &g3, Absences: i % 4, StudyTime: 4, Failures: 0,
			FamSup: models.FamSupYes, Medu: 4, Fedu: 4, Dalc: 1, Walc: 1, GoOut: 2,
		})
	}
	return recs
}

func TestTrainSeparatesClasses(t *testing.T) {
	m, err := Train(trainingSet())
	require.NoError(t, err)

	assert.Equal(t, 24, m.Samples)
	assert.Equal(t, 12, m.AtRisk)
	assert.GreaterOrEqual(t, m.Accuracy, 0.9)

	failing := models.StudentRecord{
		G1: 4, G2: 5, Absences: 25, StudyTime: 1, Failures: 3,
		FamSup: models.FamSupNo, Medu: 1, Fedu: 1, Dalc: 2, Walc: 3, GoOut: 4,
	}
	passing := models.StudentRecord{
		G1: 18, G2: 17, Absences: 1, StudyTime: 4, Failures: 0,
		FamSup: models.FamSupYes, Medu: 4, Fedu: 4, Dalc: 1, Walc: 1, GoOut: 2,
	}

	failProb := m.Probability(failing)
	passProb := m.Probability(passing)

	assert.Greater(t, failProb, 0.6)
	assert.Less(t, passProb, 0.4)
	assert.Greater(t, failProb, passProb)
}

func TestTrainIsDeterministic(t *testing.T) {
	first, err := Train(trainingSet())
	require.NoError(t, err)
	second, err := Train(trainingSet())
	require.NoError(t, err)

	assert.Equal(t, first.Weights, second.Weights)
	assert.Equal(t, first.Bias, second.Bias)
	assert.Equal(t, first.FeatureMins, second.FeatureMins)
	assert.Equal(t, first.FeatureMaxs, second.FeatureMaxs)
	assert.Equal(t, first.Accuracy, second.Accuracy)
}

func TestTrainSkipsRecordsWithoutFinalGrade(t *testing.T) {
	recs := trainingSet()
	recs = append(recs, models.StudentRecord{G1: 10, G2: 10, StudyTime: 2})

	m, err := Train(recs)
	require.NoError(t, err)
	assert.Equal(t, 24, m.Samples)
}

func TestTrainRequiresFinalGrades(t *testing.T) {
	recs := []models.StudentRecord{
		{G1: 10, G2: 10, StudyTime: 2},
		{G1: 12, G2: 14, StudyTime: 3},
	}

	_, err := Train(recs)
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestProbabilityStaysInUnitInterval(t *testing.T) {
	m, err := Train(trainingSet())
	require.NoError(t, err)

	extremes := []models.StudentRecord{
		{},
		{G1: 20, G2: 20, Absences: 93, StudyTime: 4, Failures: 4},
		{G1: -10, G2: 50, Absences: -3, StudyTime: 99, Failures: 99},
	}
	for _, rec := range extremes {
		p := m.Probability(rec)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := Train(trainingSet())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "models", "risk_model.json")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, m.ID, loaded.ID)
	assert.Equal(t, m.Samples, loaded.Samples)
	assert.Equal(t, m.Weights, loaded.Weights)

	rec := models.StudentRecord{G1: 8, G2: 9, Absences: 12, StudyTime: 2, Failures: 1}
	assert.InDelta(t, m.Probability(rec), loaded.Probability(rec), 1e-12)
}

func TestLoadRejectsUnexpectedFeatures(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "wrong_names.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"id": "x",
		"features": ["a", "b", "c", "d", "e"],
		"weights": [0, 0, 0, 0, 0],
		"feature_mins": [0, 0, 0, 0, 0],
		"feature_maxs": [1, 1, 1, 1, 1]
	}`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "wrong_count.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"id": "x",
		"features": ["failures", "absences"],
		"weights": [0, 0],
		"feature_mins": [0, 0],
		"feature_maxs": [1, 1]
	}`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
