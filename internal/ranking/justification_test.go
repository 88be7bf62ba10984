package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xAxiom/AppFactory/internal/types"
)

func TestJustification(t *testing.T) {
	tests := []struct {
		name     string
		idea     types.IdeaRecord
		expected string
	}{
		{
			name:     "balanced with high competition",
			idea:     types.IdeaRecord{Name: "Tool", PainLevel: "Medium", Competition: "High"},
			expected: "Balanced scores, high competition",
		},
		{
			name:     "balanced with complex build",
			idea:     types.IdeaRecord{Name: "AI Video Live"},
			expected: "Balanced scores, complex build",
		},
		{
			name:     "strong willingness to pay",
			idea:     types.IdeaRecord{Name: "Biz", Category: "Business", Description: "save time", Pricing: "$19.99"},
			expected: "Strong wtp",
		},
		{
			name:     "fast mvp",
			idea:     types.IdeaRecord{Name: "Tool"},
			expected: "Fast mvp",
		},
	}

	scorer := newDefaultScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(&tt.idea)
			assert.Equal(t, tt.expected, result.Justification)
		})
	}
}

func TestJustify_FirstPenaltyWins(t *testing.T) {
	breakdown := types.ScoreBreakdown{Demand: 16, Competition: 2}
	got := justify(breakdown, []string{PenaltyComplexInfra, PenaltyExcludedCategory})
	assert.Equal(t, "High demand, complex infrastructure required", got)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Strong wtp", capitalize("strong WTP"))
	assert.Equal(t, "Élan", capitalize("éLAN"))
}
