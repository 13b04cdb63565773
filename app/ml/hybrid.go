package ml

import (
	"fmt"

	"github.com/Stkiag0/dss-group2-projectv1/app/models"
	"github.com/Stkiag0/dss-group2-projectv1/app/scoring"
)

// Probability cutoffs for the hybrid decision. A student is escalated when
// either the model probability or the rule total crosses a tier boundary,
// so the model can only raise a classification, never lower it.
const (
	HighProbability     = 0.65
	ModerateProbability = 0.4

	noteProbability = 0.7
)

// FinalTier combines the model probability with the rule-based total.
func FinalTier(prob float64, total int, p scoring.Policy) models.RiskTier {
	switch {
	case prob > HighProbability || total >= p.HighMin:
		return models.TierHigh
	case prob > ModerateProbability || total >= p.ModerateMin:
		return models.TierModerate
	}
	return models.TierLow
}

// AdvisoryNote returns the extra advice line attached when the model is
// highly confident a student will fail.
func AdvisoryNote(prob float64) (string, bool) {
	if prob > noteProbability {
		return fmt.Sprintf("Model predicts %.1f%% failure probability - close monitoring advised", prob*100), true
	}
	return "", false
}
