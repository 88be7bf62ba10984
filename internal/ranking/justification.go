package ranking

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// strengthThresholds name the top factor when it scores at least the threshold
var strengthThresholds = map[string]struct {
	min    int
	phrase string
}{
	types.FactorDemand:         {15, "high demand"},
	types.FactorWillingnessPay: {15, "strong WTP"},
	types.FactorCompetition:    {12, "low competition"},
	types.FactorMVPFeasibility: {12, "fast MVP"},
}

// weaknessPhrases name the lowest factor when it scores 5 or less
var weaknessPhrases = map[string]string{
	types.FactorCompetition:    "high competition",
	types.FactorMVPFeasibility: "complex build",
}

const weaknessThreshold = 5

// justify builds the one-line summary of a score: the strength of the top
// factor, then the first penalty or the weakness of the lowest factor.
func justify(breakdown types.ScoreBreakdown, penalties []string) string {
	factors := breakdown.Factors()

	// Stable, so equal scores keep rubric order
	byScore := make([]types.Factor, len(factors))
	copy(byScore, factors)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	strength := "balanced scores"
	top := byScore[0]
	if rule, ok := strengthThresholds[top.Name]; ok && top.Score >= rule.min {
		strength = rule.phrase
	}

	weakness := ""
	if len(penalties) > 0 {
		weakness = ", " + strings.ToLower(penalties[0])
	} else {
		lowest := factors[0]
		for _, f := range factors[1:] {
			if f.Score < lowest.Score {
				lowest = f
			}
		}
		if lowest.Score <= weaknessThreshold {
			if phrase, ok := weaknessPhrases[lowest.Name]; ok {
				weakness = ", " + phrase
			}
		}
	}

	return capitalize(strength + weakness)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
