// Package scoring implements the deterministic dropout-risk scorer. Each
// student gets four sub-scores (academic, attendance, family support,
// lifestyle) whose sum maps onto a risk tier, plus an ordered list of
// advice lines for the advisor.
package scoring

import "github.com/Stkiag0/dss-group2-projectv1/app/models"

// Policy carries every threshold and point value the scorer uses. Callers
// pass it explicitly so evaluations stay pure and reproducible across
// reports. DefaultPolicy is the production rule set.
type Policy struct {
	// Academic performance (APS). GradeCritical and GradeWarning are
	// breakpoints on the second-period grade: below GradeCritical scores
	// GradeCriticalPoints, up to and including GradeWarning scores
	// GradeWarningPoints. FailurePenalty is added per past class failure;
	// the production rule set leaves it at zero so historical reports keep
	// their grade-only arithmetic.
	GradeCritical       int
	GradeWarning        int
	GradeCriticalPoints int
	GradeWarningPoints  int
	FailurePenalty      int
	APSMax              int

	// Attendance (ARS). Strictly more than AbsencesSevere absences scores
	// AbsencesSeverePoints, AbsencesElevated up to AbsencesSevere scores
	// AbsencesElevatedPoints.
	AbsencesSevere         int
	AbsencesElevated       int
	AbsencesSeverePoints   int
	AbsencesElevatedPoints int
	ARSMax                 int

	// Family support (FSR). ParentEduLow is compared against the mean of
	// both parents' education levels, so it is fractional.
	NoFamSupPoints     int
	ParentEduLow       float64
	ParentEduLowPoints int
	FSRMax             int

	// Lifestyle (LRS). AlcoholHigh is compared against the mean of workday
	// and weekend consumption.
	AlcoholHigh        float64
	AlcoholHighPoints  int
	GoOutHigh          int
	GoOutHighPoints    int
	StudyTimeMinimal   int
	StudyTimeMinPoints int
	LRSMax             int

	// MentorGrade is the second-period grade below which a student lacking
	// family support gets mentor advice.
	MentorGrade int

	// Classification boundaries on the total score.
	HighMin     int
	ModerateMin int
}

// DefaultPolicy returns the production rule set: grades below 10 are
// critical, more than 15 absences severe, and totals of 8 or more
// classify as high risk.
func DefaultPolicy() Policy {
	return Policy{
		GradeCritical:       10,
		GradeWarning:        11,
		GradeCriticalPoints: 4,
		GradeWarningPoints:  2,
		FailurePenalty:      0,
		APSMax:              4,

		AbsencesSevere:         15,
		AbsencesElevated:       5,
		AbsencesSeverePoints:   3,
		AbsencesElevatedPoints: 1,
		ARSMax:                 3,

		NoFamSupPoints:     2,
		ParentEduLow:       2,
		ParentEduLowPoints: 1,
		FSRMax:             3,

		AlcoholHigh:        4,
		AlcoholHighPoints:  2,
		GoOutHigh:          4,
		GoOutHighPoints:    1,
		StudyTimeMinimal:   1,
		StudyTimeMinPoints: 2,
		LRSMax:             5,

		MentorGrade: 12,

		HighMin:     8,
		ModerateMin: 4,
	}
}

// Classify maps a total score onto its risk tier.
func (p Policy) Classify(total int) models.RiskTier {
	switch {
	case total >= p.HighMin:
		return models.TierHigh
	case total >= p.ModerateMin:
		return models.TierModerate
	}
	return models.TierLow
}
