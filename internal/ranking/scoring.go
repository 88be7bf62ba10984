package ranking

import (
	"strings"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// Penalty reasons recorded on a score result
const (
	PenaltyExcludedCategory = "Excluded category violation"
	PenaltyComplexInfra     = "Complex infrastructure required"
)

// Scorer applies a rubric to idea records. It holds no mutable state.
type Scorer struct {
	rubric Rubric
}

// NewScorer creates a scorer for the given rubric.
func NewScorer(rubric Rubric) *Scorer {
	return &Scorer{rubric: rubric}
}

// ideaText is the lowercased text an idea is scored against
type ideaText struct {
	name        string
	description string
	category    string
	competition string
	painLevel   string
	pricing     string
	full        string
}

func newIdeaText(idea *types.IdeaRecord) ideaText {
	t := ideaText{
		name:        strings.ToLower(idea.Name),
		description: strings.ToLower(idea.Description),
		category:    strings.ToLower(idea.Category),
		competition: strings.ToLower(idea.Competition),
		painLevel:   strings.ToLower(idea.PainLevel),
		pricing:     strings.ToLower(idea.Pricing),
	}
	t.full = t.name + " " + t.description + " " + t.category
	return t
}

// Score evaluates one idea. The result depends only on the idea's fields.
//
// The excluded-category cap is applied before the complex-infrastructure
// penalty, and the penalty recomputes the total from the sub-scores, so an
// idea that trips both is not held to the cap.
func (s *Scorer) Score(idea *types.IdeaRecord) types.ScoreResult {
	text := newIdeaText(idea)

	breakdown := types.ScoreBreakdown{
		Demand:         s.scoreDemand(text),
		WillingnessPay: s.scoreWillingnessPay(text),
		Competition:    s.scoreCompetition(text),
		Retention:      s.scoreRetention(text),
		MVPFeasibility: s.scoreMVPFeasibility(text),
		Monetization:   s.scoreMonetization(text),
		PolicyRisk:     s.scorePolicyRisk(text),
	}

	penalties := make([]string, 0)
	total := breakdown.Sum()

	if containsAny(text.full, s.rubric.ExcludedCategories) {
		penalties = append(penalties, PenaltyExcludedCategory)
		total = min(s.rubric.ExcludedCategoryCap, total)
	}

	if containsAny(text.full, s.rubric.ComplexInfra) {
		penalties = append(penalties, PenaltyComplexInfra)
		breakdown.MVPFeasibility = max(0, breakdown.MVPFeasibility-s.rubric.ComplexInfraPenalty)
		total = breakdown.Sum()
	}

	return types.ScoreResult{
		TotalScore:    clamp(total, 0, types.MaxTotalScore),
		Breakdown:     breakdown,
		Penalties:     penalties,
		Justification: justify(breakdown, penalties),
	}
}

func (s *Scorer) scoreDemand(t ideaText) int {
	r := s.rubric.Demand
	score := r.Baseline

	if containsAny(t.description, r.PainKeywords) {
		score += r.PainBonus
	}

	if strings.Contains(t.painLevel, "high") {
		score += r.HighPainBonus
	} else if strings.Contains(t.painLevel, "medium") {
		score += r.MediumPainBonus
	}

	if containsAny(t.description, r.FrequencyKeywords) {
		score += r.FrequencyBonus
	}

	return clamp(score, 0, types.MaxDemand)
}

func (s *Scorer) scoreWillingnessPay(t ideaText) int {
	r := s.rubric.WillingnessPay
	score := r.Baseline

	if containsAny(t.category, r.ValueCategories) {
		score += r.CategoryBonus
	}

	if containsAny(t.pricing, r.PremiumPrices) {
		score += r.PremiumBonus
	} else if containsAny(t.pricing, r.MidTierPrices) {
		score += r.MidTierBonus
	}

	if containsAny(t.description, r.ValueKeywords) {
		score += r.ValueSignalBonus
	}

	return clamp(score, 0, types.MaxWillingnessPay)
}

func (s *Scorer) scoreCompetition(t ideaText) int {
	r := s.rubric.Competition
	var score int
	switch {
	case strings.Contains(t.competition, "low"):
		score = r.Low
	case strings.Contains(t.competition, "medium"):
		score = r.Medium
	case strings.Contains(t.competition, "high"):
		score = r.High
	default:
		score = r.Unknown
	}
	return clamp(score, 0, types.MaxCompetition)
}

func (s *Scorer) scoreRetention(t ideaText) int {
	r := s.rubric.Retention
	score := r.Baseline

	if containsAny(t.category, r.HabitCategories) {
		score += r.CategoryBonus
	}
	if containsAny(t.description, r.RetentionKeywords) {
		score += r.RetentionBonus
	}
	if containsAny(t.description, r.SocialKeywords) {
		score += r.SocialBonus
	}

	return clamp(score, 0, types.MaxRetention)
}

func (s *Scorer) scoreMVPFeasibility(t ideaText) int {
	r := s.rubric.MVPFeasibility
	score := r.Baseline

	// Every matched feature costs, not just the first
	for _, feature := range r.ComplexFeatures {
		if strings.Contains(t.full, feature) {
			score -= r.ComplexPenalty
		}
	}

	if containsAny(t.description, r.SimplicityKeywords) {
		score += r.SimplicityBonus
	}
	if !containsAny(t.full, r.MultiUserKeywords) {
		score += r.SoloBuilderBonus
	}

	return clamp(score, 0, types.MaxMVPFeasibility)
}

func (s *Scorer) scoreMonetization(t ideaText) int {
	r := s.rubric.Monetization
	score := r.Baseline

	if containsAny(t.description, r.PremiumKeywords) {
		score += r.PremiumBonus
	}
	if containsAny(t.category, r.SubscriptionCategory) {
		score += r.CategoryBonus
	}

	return clamp(score, 0, types.MaxMonetization)
}

func (s *Scorer) scorePolicyRisk(t ideaText) int {
	r := s.rubric.PolicyRisk
	if containsAny(t.full, r.RiskKeywords) {
		return clamp(r.HighRisk, 0, types.MaxPolicyRisk)
	}
	return clamp(r.LowRisk, 0, types.MaxPolicyRisk)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
