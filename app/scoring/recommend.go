package scoring

import "github.com/Stkiag0/dss-group2-projectv1/app/models"

// Advice lines shown to advisors. Exported reports join these verbatim, so
// the wording is load-bearing.
const (
	adviceGradeCritical  = "Critical academic performance - immediate tutoring required"
	adviceGradeWarning   = "Academic performance needs improvement"
	adviceAbsencesSevere = "Excessive absences detected - attendance intervention needed"
	adviceAbsencesWatch  = "Monitor attendance - trending toward excessive"
	adviceNoFamSup       = "Lack of family support - engage parents and guardians"
	adviceParentEduLow   = "Provide additional academic resources (low parental education)"
	adviceAlcohol        = "Substance use concern - counseling recommended"
	adviceGoOut          = "Balance social life with academics"
	adviceStudyTime      = "Study time critically low - create study schedule"
	adviceCombinedRisk   = "Multiple high-risk factors present - immediate intervention required"
	adviceMentor         = "Assign mentor or peer support - lacks family backing"
	adviceTierHigh       = "Immediate counseling and parental engagement required"
	adviceTierModerate   = "Academic monitoring and support recommended"
	adviceTierLow        = "Continue current trajectory"
)

// recommendations emits advice in a fixed order: academic, attendance,
// family, lifestyle, combined factors, then the overall tier line. The
// record must already be clamped.
func recommendations(r models.StudentRecord, total int, p Policy) []string {
	recs := make([]string, 0, 8)

	switch {
	case r.G2 < p.GradeCritical:
		recs = append(recs, adviceGradeCritical)
	case r.G2 <= p.GradeWarning:
		recs = append(recs, adviceGradeWarning)
	}

	switch {
	case r.Absences > p.AbsencesSevere:
		recs = append(recs, adviceAbsencesSevere)
	case r.Absences >= p.AbsencesElevated:
		recs = append(recs, adviceAbsencesWatch)
	}

	if r.FamSup == models.FamSupNo {
		recs = append(recs, adviceNoFamSup)
	}
	if parentEdu(r) <= p.ParentEduLow {
		recs = append(recs, adviceParentEduLow)
	}

	if alcoholUse(r) >= p.AlcoholHigh {
		recs = append(recs, adviceAlcohol)
	}
	if r.GoOut >= p.GoOutHigh {
		recs = append(recs, adviceGoOut)
	}
	if r.StudyTime == p.StudyTimeMinimal {
		recs = append(recs, adviceStudyTime)
	}

	combined := r.G2 < p.GradeCritical && r.Absences > p.AbsencesSevere
	if combined {
		recs = append(recs, adviceCombinedRisk)
	}
	if r.FamSup == models.FamSupNo && r.G2 < p.MentorGrade {
		recs = append(recs, adviceMentor)
	}

	switch p.Classify(total) {
	case models.TierHigh:
		// The combined line already calls for immediate intervention.
		if !combined {
			recs = append(recs, adviceTierHigh)
		}
	case models.TierModerate:
		recs = append(recs, adviceTierModerate)
	default:
		recs = append(recs, adviceTierLow)
	}

	return recs
}
