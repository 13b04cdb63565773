package models

// RiskAssessment is the scorer's output for a single student: the four
// sub-scores, their sum, the risk tier, and the advice lines.
type RiskAssessment struct {
	APS             int      `json:"aps"`
	ARS             int      `json:"ars"`
	FSR             int      `json:"fsr"`
	LRS             int      `json:"lrs"`
	Total           int      `json:"total"`
	Tier            RiskTier `json:"tier"`
	Recommendations []string `json:"recommendations"`
}

// FailureProbability converts the total score into the 0-1 figure shown on
// result pages: the total over the 15-point maximum, capped at 1.
func (a RiskAssessment) FailureProbability() float64 {
	p := float64(a.Total) / 15
	if p > 1 {
		return 1
	}
	return p
}

// StudentResult pairs one assessed record with its computed scores. Index is
// the row position in the loaded dataset, or -1 for form submissions.
// MLProbability and FinalTier reflect the attached prediction model; without
// one FinalTier equals the rule tier and MLProbability stays zero.
type StudentResult struct {
	Index         int            `json:"index"`
	Record        StudentRecord  `json:"record"`
	Assessment    RiskAssessment `json:"assessment"`
	MLProbability float64        `json:"ml_probability"`
	FinalTier     RiskTier       `json:"final_tier"`
}

// Summary aggregates tier counts across a dataset for the dashboard.
type Summary struct {
	TotalStudents   int     `json:"total_students"`
	HighRisk        int     `json:"high_risk"`
	ModerateRisk    int     `json:"moderate_risk"`
	LowRisk         int     `json:"low_risk"`
	HighRiskPct     float64 `json:"high_risk_pct"`
	ModerateRiskPct float64 `json:"moderate_risk_pct"`
	LowRiskPct      float64 `json:"low_risk_pct"`
	MLEnabled       bool    `json:"ml_enabled"`
}
