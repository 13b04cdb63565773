package models

// RiskTier defines the classification buckets for a student's total risk score.
type RiskTier string

const (
	TierLow      RiskTier = "Low Risk"
	TierModerate RiskTier = "Moderate Risk"
	TierHigh     RiskTier = "High Risk"
)

// FamilySupport defines the textual yes/no flag used by the student dataset.
type FamilySupport string

const (
	FamSupYes FamilySupport = "yes"
	FamSupNo  FamilySupport = "no"
)
