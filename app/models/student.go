package models

// StudentRecord is one row of the student dataset or one submitted
// assessment form, holding only the fields the risk scorer consumes.
// G3 is the final-period grade; it is optional because current-year
// datasets and form submissions will not have it yet.
type StudentRecord struct {
	G1        int           `json:"g1"`
	G2        int           `json:"g2"`
	G3        *int          `json:"g3,omitempty"`
	Absences  int           `json:"absences"`
	StudyTime int           `json:"studytime"`
	Failures  int           `json:"failures"`
	FamSup    FamilySupport `json:"famsup"`
	Medu      int           `json:"medu"`
	Fedu      int           `json:"fedu"`
	Dalc      int           `json:"dalc"`
	Walc      int           `json:"walc"`
	GoOut     int           `json:"goout"`
}

// Clamp returns a copy with every field forced into its documented range:
// grades [0,20], absences [0,93], study time [1,4], failures [0,4],
// parental education [0,4], alcohol use [1,5], outings [1,5]. Out-of-range
// input is pulled to the nearest bound rather than rejected, so assessments
// stay reproducible for any record.
func (r StudentRecord) Clamp() StudentRecord {
	r.G1 = clampInt(r.G1, 0, 20)
	r.G2 = clampInt(r.G2, 0, 20)
	if r.G3 != nil {
		g3 := clampInt(*r.G3, 0, 20)
		r.G3 = &g3
	}
	r.Absences = clampInt(r.Absences, 0, 93)
	r.StudyTime = clampInt(r.StudyTime, 1, 4)
	r.Failures = clampInt(r.Failures, 0, 4)
	r.Medu = clampInt(r.Medu, 0, 4)
	r.Fedu = clampInt(r.Fedu, 0, 4)
	r.Dalc = clampInt(r.Dalc, 1, 5)
	r.Walc = clampInt(r.Walc, 1, 5)
	r.GoOut = clampInt(r.GoOut, 1, 5)
	if r.FamSup != FamSupNo {
		r.FamSup = FamSupYes
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
