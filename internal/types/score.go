package types

// Factor maxima for the scoring rubric. They sum to 100.
const (
	MaxDemand         = 20
	MaxWillingnessPay = 20
	MaxCompetition    = 15
	MaxRetention      = 15
	MaxMVPFeasibility = 15
	MaxMonetization   = 10
	MaxPolicyRisk     = 5

	MaxTotalScore = MaxDemand + MaxWillingnessPay + MaxCompetition + MaxRetention +
		MaxMVPFeasibility + MaxMonetization + MaxPolicyRisk
)

// Factor names as they appear in JSON output and justifications
const (
	FactorDemand         = "demand"
	FactorWillingnessPay = "willingness_pay"
	FactorCompetition    = "competition"
	FactorRetention      = "retention"
	FactorMVPFeasibility = "mvp_feasibility"
	FactorMonetization   = "monetization"
	FactorPolicyRisk     = "policy_risk"
)

// ScoreBreakdown holds the seven rubric sub-scores
type ScoreBreakdown struct {
	Demand         int `json:"demand"`
	WillingnessPay int `json:"willingness_pay"`
	Competition    int `json:"competition"`
	Retention      int `json:"retention"`
	MVPFeasibility int `json:"mvp_feasibility"`
	Monetization   int `json:"monetization"`
	PolicyRisk     int `json:"policy_risk"`
}

// Factor is a single named sub-score
type Factor struct {
	Name  string
	Label string
	Score int
	Max   int
}

// Factors returns the sub-scores in rubric order
func (b ScoreBreakdown) Factors() []Factor {
	return []Factor{
		{Name: FactorDemand, Label: "Demand/Pain Intensity", Score: b.Demand, Max: MaxDemand},
		{Name: FactorWillingnessPay, Label: "Willingness to Pay", Score: b.WillingnessPay, Max: MaxWillingnessPay},
		{Name: FactorCompetition, Label: "Competition Level", Score: b.Competition, Max: MaxCompetition},
		{Name: FactorRetention, Label: "Retention Loop", Score: b.Retention, Max: MaxRetention},
		{Name: FactorMVPFeasibility, Label: "MVP Feasibility", Score: b.MVPFeasibility, Max: MaxMVPFeasibility},
		{Name: FactorMonetization, Label: "Monetization Fit", Score: b.Monetization, Max: MaxMonetization},
		{Name: FactorPolicyRisk, Label: "Policy/Store Risk", Score: b.PolicyRisk, Max: MaxPolicyRisk},
	}
}

// Sum returns the raw total of all sub-scores
func (b ScoreBreakdown) Sum() int {
	return b.Demand + b.WillingnessPay + b.Competition + b.Retention +
		b.MVPFeasibility + b.Monetization + b.PolicyRisk
}

// ScoreResult represents the rubric evaluation of a single idea
type ScoreResult struct {
	TotalScore    int            `json:"total_score"`
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	Penalties     []string       `json:"penalties"`
	Justification string         `json:"justification"`
}

// ScoredIdea pairs an idea with its score
type ScoredIdea struct {
	IdeaRecord
	ScoreResult
}

// RankedIdeas represents scored ideas sorted by total score descending
type RankedIdeas struct {
	Ranked []ScoredIdea `json:"ranked"`
}
