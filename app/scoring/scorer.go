package scoring

import "github.com/Stkiag0/dss-group2-projectv1/app/models"

// Evaluate scores one student record against the policy. Inputs are clamped
// into their documented ranges first, so the same record always yields the
// same assessment.
func Evaluate(rec models.StudentRecord, p Policy) models.RiskAssessment {
	r := rec.Clamp()

	aps := capScore(academicPoints(r, p), p.APSMax)
	ars := capScore(attendancePoints(r, p), p.ARSMax)
	fsr := capScore(familyPoints(r, p), p.FSRMax)
	lrs := capScore(lifestylePoints(r, p), p.LRSMax)
	total := aps + ars + fsr + lrs

	return models.RiskAssessment{
		APS:             aps,
		ARS:             ars,
		FSR:             fsr,
		LRS:             lrs,
		Total:           total,
		Tier:            p.Classify(total),
		Recommendations: recommendations(r, total, p),
	}
}

func academicPoints(r models.StudentRecord, p Policy) int {
	pts := p.FailurePenalty * r.Failures
	switch {
	case r.G2 < p.GradeCritical:
		pts += p.GradeCriticalPoints
	case r.G2 <= p.GradeWarning:
		pts += p.GradeWarningPoints
	}
	return pts
}

func attendancePoints(r models.StudentRecord, p Policy) int {
	switch {
	case r.Absences > p.AbsencesSevere:
		return p.AbsencesSeverePoints
	case r.Absences >= p.AbsencesElevated:
		return p.AbsencesElevatedPoints
	}
	return 0
}

func familyPoints(r models.StudentRecord, p Policy) int {
	pts := 0
	if r.FamSup == models.FamSupNo {
		pts += p.NoFamSupPoints
	}
	if parentEdu(r) <= p.ParentEduLow {
		pts += p.ParentEduLowPoints
	}
	return pts
}

func lifestylePoints(r models.StudentRecord, p Policy) int {
	pts := 0
	if alcoholUse(r) >= p.AlcoholHigh {
		pts += p.AlcoholHighPoints
	}
	if r.GoOut >= p.GoOutHigh {
		pts += p.GoOutHighPoints
	}
	if r.StudyTime == p.StudyTimeMinimal {
		pts += p.StudyTimeMinPoints
	}
	return pts
}

// parentEdu is the mean of both parents' education levels. The mean is
// fractional: a 2/3 split gives 2.5, which is above the low threshold.
func parentEdu(r models.StudentRecord) float64 {
	return float64(r.Medu+r.Fedu) / 2
}

// alcoholUse is the mean of workday and weekend consumption.
func alcoholUse(r models.StudentRecord) float64 {
	return float64(r.Dalc+r.Walc) / 2
}

func capScore(pts, max int) int {
	if pts < 0 {
		return 0
	}
	if pts > max {
		return max
	}
	return pts
}
