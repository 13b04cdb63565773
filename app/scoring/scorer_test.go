package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

func TestEvaluateHighRiskStudent(t *testing.T) {
	rec := models.StudentRecord{
		G1: 5, G2: 6, Failures: 2, Absences: 20, StudyTime: 1,
		FamSup: models.FamSupNo, Medu: 2, Fedu: 2, Dalc: 1, Walc: 1, GoOut: 2,
	}

	a := Evaluate(rec, DefaultPolicy())

	assert.Equal(t, 4, a.APS)
	assert.Equal(t, 3, a.ARS)
	assert.Equal(t, 3, a.FSR)
	assert.Equal(t, 2, a.LRS)
	assert.Equal(t, 12, a.Total)
	assert.Equal(t, models.TierHigh, a.Tier)
}

func TestEvaluateLowRiskStudent(t *testing.T) {
	rec := models.StudentRecord{
		G1: 18, G2: 17, Failures: 0, Absences: 2, StudyTime: 4,
		FamSup: models.FamSupYes, Medu: 4, Fedu: 4, Dalc: 1, Walc: 1, GoOut: 2,
	}

	a := Evaluate(rec, DefaultPolicy())

	assert.Equal(t, 0, a.Total)
	assert.Equal(t, models.TierLow, a.Tier)
	assert.Equal(t, []string{adviceTierLow}, a.Recommendations)
}

func TestEvaluateTierBoundaries(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name  string
		rec   models.StudentRecord
		total int
		tier  models.RiskTier
	}{
		{
			name: "total 3 stays low",
			rec: models.StudentRecord{
				G2: 15, FamSup: models.FamSupNo, Medu: 2, Fedu: 2,
				StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
			},
			total: 3,
			tier:  models.TierLow,
		},
		{
			name: "total 4 becomes moderate",
			rec: models.StudentRecord{
				G2: 10, FamSup: models.FamSupNo, Medu: 3, Fedu: 3,
				StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
			},
			total: 4,
			tier:  models.TierModerate,
		},
		{
			name: "total 7 stays moderate",
			rec: models.StudentRecord{
				G2: 5, Absences: 20, FamSup: models.FamSupYes, Medu: 4, Fedu: 4,
				StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
			},
			total: 7,
			tier:  models.TierModerate,
		},
		{
			name: "total 8 becomes high",
			rec: models.StudentRecord{
				G2: 5, Absences: 20, FamSup: models.FamSupYes, Medu: 2, Fedu: 2,
				StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
			},
			total: 8,
			tier:  models.TierHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Evaluate(tt.rec, p)
			assert.Equal(t, tt.total, a.Total)
			assert.Equal(t, tt.tier, a.Tier)
			assert.Equal(t, a.APS+a.ARS+a.FSR+a.LRS, a.Total)
		})
	}
}

func TestEvaluateEveryFactorHitsSubScoreMaxima(t *testing.T) {
	rec := models.StudentRecord{
		G2: 0, Failures: 4, Absences: 93, StudyTime: 1,
		FamSup: models.FamSupNo, Medu: 0, Fedu: 0, Dalc: 5, Walc: 5, GoOut: 5,
	}

	a := Evaluate(rec, DefaultPolicy())

	assert.Equal(t, 4, a.APS)
	assert.Equal(t, 3, a.ARS)
	assert.Equal(t, 3, a.FSR)
	assert.Equal(t, 5, a.LRS)
	assert.Equal(t, 15, a.Total)
	assert.Equal(t, models.TierHigh, a.Tier)
}

func TestEvaluateCapsAcademicScoreWithFailurePenalty(t *testing.T) {
	p := DefaultPolicy()
	p.FailurePenalty = 2

	rec := models.StudentRecord{
		G2: 0, Failures: 4, FamSup: models.FamSupYes, Medu: 4, Fedu: 4,
		StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
	}

	a := Evaluate(rec, p)

	// Raw academic points would be 4 + 2*4 = 12.
	assert.Equal(t, p.APSMax, a.APS)
}

func TestEvaluateFractionalAverages(t *testing.T) {
	p := DefaultPolicy()

	// Parent education 2 and 3 averages to 2.5, above the low threshold.
	rec := models.StudentRecord{
		G2: 15, FamSup: models.FamSupYes, Medu: 2, Fedu: 3,
		StudyTime: 2, Dalc: 1, Walc: 1, GoOut: 2,
	}
	assert.Equal(t, 0, Evaluate(rec, p).FSR)

	// Alcohol 3 and 4 averages to 3.5, below the high threshold.
	rec = models.StudentRecord{
		G2: 15, FamSup: models.FamSupYes, Medu: 4, Fedu: 4,
		StudyTime: 2, Dalc: 3, Walc: 4, GoOut: 2,
	}
	assert.Equal(t, 0, Evaluate(rec, p).LRS)

	// Alcohol 4 and 4 averages to exactly 4, which counts.
	rec.Dalc, rec.Walc = 4, 4
	assert.Equal(t, 2, Evaluate(rec, p).LRS)
}

func TestEvaluateClampsOutOfRangeInput(t *testing.T) {
	rec := models.StudentRecord{
		G2: -4, Absences: 500, StudyTime: 0,
		Medu: -2, Fedu: -2, Dalc: -3, Walc: -3, GoOut: 99,
	}

	a := Evaluate(rec, DefaultPolicy())

	assert.Equal(t, 4, a.APS)
	assert.Equal(t, 3, a.ARS)
	assert.Equal(t, 1, a.FSR)
	assert.Equal(t, 3, a.LRS)
	assert.Equal(t, 11, a.Total)
	assert.Equal(t, models.TierHigh, a.Tier)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	rec := models.StudentRecord{
		G1: 9, G2: 10, Absences: 7, StudyTime: 1, Failures: 1,
		FamSup: models.FamSupNo, Medu: 1, Fedu: 2, Dalc: 2, Walc: 3, GoOut: 4,
	}
	p := DefaultPolicy()

	first := Evaluate(rec, p)
	second := Evaluate(rec, p)
	assert.Equal(t, first, second)
}

func TestEvaluateWorseInputNeverLowersTier(t *testing.T) {
	p := DefaultPolicy()
	base := models.StudentRecord{
		G2: 12, Absences: 3, StudyTime: 2, FamSup: models.FamSupYes,
		Medu: 3, Fedu: 3, Dalc: 1, Walc: 1, GoOut: 2,
	}

	worse := []models.StudentRecord{base}
	next := base
	next.G2 = 10
	worse = append(worse, next)
	next.Absences = 8
	worse = append(worse, next)
	next.FamSup = models.FamSupNo
	worse = append(worse, next)
	next.G2 = 4
	next.Absences = 30
	worse = append(worse, next)

	prev := -1
	for _, rec := range worse {
		rank := tierRank(Evaluate(rec, p).Tier)
		assert.GreaterOrEqual(t, rank, prev)
		prev = rank
	}
}

func TestClassify(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, models.TierLow, p.Classify(0))
	assert.Equal(t, models.TierLow, p.Classify(3))
	assert.Equal(t, models.TierModerate, p.Classify(4))
	assert.Equal(t, models.TierModerate, p.Classify(7))
	assert.Equal(t, models.TierHigh, p.Classify(8))
	assert.Equal(t, models.TierHigh, p.Classify(15))
}

func tierRank(tier models.RiskTier) int {
	switch tier {
	case models.TierHigh:
		return 2
	case models.TierModerate:
		return 1
	}
	return 0
}
