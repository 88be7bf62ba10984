// Package ranking scores app ideas against a fixed rubric and ranks them.
package ranking

import "github.com/0xAxiom/AppFactory/internal/types"

// Rubric is the immutable configuration of the scoring heuristics. Keyword
// matching is case-insensitive substring matching against lowercased text.
type Rubric struct {
	Demand         DemandRubric
	WillingnessPay WillingnessPayRubric
	Competition    CompetitionRubric
	Retention      RetentionRubric
	MVPFeasibility MVPFeasibilityRubric
	Monetization   MonetizationRubric
	PolicyRisk     PolicyRiskRubric

	// ExcludedCategories cap the total score at ExcludedCategoryCap
	ExcludedCategories  []string
	ExcludedCategoryCap int
	// ComplexInfra keywords subtract ComplexInfraPenalty from MVP feasibility
	ComplexInfra        []string
	ComplexInfraPenalty int
}

// DemandRubric scores pain intensity and frequency of use.
type DemandRubric struct {
	Baseline          int
	PainKeywords      []string
	PainBonus         int
	HighPainBonus     int
	MediumPainBonus   int
	FrequencyKeywords []string
	FrequencyBonus    int
}

// WillingnessPayRubric scores subscription readiness of the target market.
type WillingnessPayRubric struct {
	Baseline         int
	ValueCategories  []string
	CategoryBonus    int
	PremiumPrices    []string
	PremiumBonus     int
	MidTierPrices    []string
	MidTierBonus     int
	ValueKeywords    []string
	ValueSignalBonus int
}

// CompetitionRubric maps a competition level to a score. Higher is less saturated.
type CompetitionRubric struct {
	Low     int
	Medium  int
	High    int
	Unknown int
}

// RetentionRubric scores habit-forming potential.
type RetentionRubric struct {
	Baseline          int
	HabitCategories   []string
	CategoryBonus     int
	RetentionKeywords []string
	RetentionBonus    int
	SocialKeywords    []string
	SocialBonus       int
}

// MVPFeasibilityRubric scores how quickly a solo builder can ship.
type MVPFeasibilityRubric struct {
	Baseline           int
	ComplexFeatures    []string
	ComplexPenalty     int
	SimplicityKeywords []string
	SimplicityBonus    int
	MultiUserKeywords  []string
	SoloBuilderBonus   int
}

// MonetizationRubric scores subscription model fit.
type MonetizationRubric struct {
	Baseline             int
	PremiumKeywords      []string
	PremiumBonus         int
	SubscriptionCategory []string
	CategoryBonus        int
}

// PolicyRiskRubric scores app store risk. Higher is lower risk.
type PolicyRiskRubric struct {
	RiskKeywords []string
	HighRisk     int
	LowRisk      int
}

// DefaultRubric returns the standard app factory rubric.
func DefaultRubric() Rubric {
	return Rubric{
		Demand: DemandRubric{
			Baseline:          10,
			PainKeywords:      []string{"frustrated", "struggling", "difficult", "painful", "annoying"},
			PainBonus:         5,
			HighPainBonus:     5,
			MediumPainBonus:   3,
			FrequencyKeywords: []string{"daily", "every day", "routine", "habit"},
			FrequencyBonus:    3,
		},
		WillingnessPay: WillingnessPayRubric{
			Baseline:         8,
			ValueCategories:  []string{"productivity", "business", "professional", "health", "finance"},
			CategoryBonus:    5,
			PremiumPrices:    []string{"$9.99", "$14.99", "$19.99", "premium"},
			PremiumBonus:     4,
			MidTierPrices:    []string{"$4.99", "$6.99"},
			MidTierBonus:     2,
			ValueKeywords:    []string{"save time", "increase productivity", "professional", "business"},
			ValueSignalBonus: 3,
		},
		Competition: CompetitionRubric{
			Low:     15,
			Medium:  10,
			High:    3,
			Unknown: 8,
		},
		Retention: RetentionRubric{
			Baseline:          5,
			HabitCategories:   []string{"health", "fitness", "productivity", "habit"},
			CategoryBonus:     5,
			RetentionKeywords: []string{"daily", "track", "progress", "streak", "goal"},
			RetentionBonus:    3,
			SocialKeywords:    []string{"share", "social", "community", "friends"},
			SocialBonus:       2,
		},
		MVPFeasibility: MVPFeasibilityRubric{
			Baseline:           12,
			ComplexFeatures:    []string{"ai", "machine learning", "real-time sync", "video", "live", "matching algorithm"},
			ComplexPenalty:     3,
			SimplicityKeywords: []string{"simple", "basic", "minimal", "straightforward"},
			SimplicityBonus:    2,
			MultiUserKeywords:  []string{"team", "collaboration", "multi-user", "real-time"},
			SoloBuilderBonus:   1,
		},
		Monetization: MonetizationRubric{
			Baseline:             5,
			PremiumKeywords:      []string{"premium", "advanced", "unlimited", "pro features"},
			PremiumBonus:         3,
			SubscriptionCategory: []string{"productivity", "business", "health", "fitness"},
			CategoryBonus:        2,
		},
		PolicyRisk: PolicyRiskRubric{
			RiskKeywords: []string{"medical", "health diagnosis", "crypto", "gambling", "dating", "adult", "financial advice"},
			HighRisk:     1,
			LowRisk:      types.MaxPolicyRisk,
		},
		ExcludedCategories:  []string{"dating", "gambling", "crypto", "trading", "wallet", "medical", "diagnosis"},
		ExcludedCategoryCap: 30,
		ComplexInfra:        []string{"real-time matching", "video calls", "live streaming", "peer-to-peer", "blockchain", "ai training", "machine learning training"},
		ComplexInfraPenalty: 8,
	}
}
