package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBreakdown_SumAndFactors(t *testing.T) {
	b := ScoreBreakdown{
		Demand:         18,
		WillingnessPay: 13,
		Competition:    10,
		Retention:      13,
		MVPFeasibility: 13,
		Monetization:   7,
		PolicyRisk:     5,
	}

	assert.Equal(t, 79, b.Sum())

	factors := b.Factors()
	require.Len(t, factors, 7)
	assert.Equal(t, FactorDemand, factors[0].Name)
	assert.Equal(t, FactorPolicyRisk, factors[6].Name)

	total := 0
	maxTotal := 0
	for _, f := range factors {
		total += f.Score
		maxTotal += f.Max
	}
	assert.Equal(t, b.Sum(), total)
	assert.Equal(t, MaxTotalScore, maxTotal)
	assert.Equal(t, 100, MaxTotalScore)
}

func TestScoredIdea_JSONMarshaling(t *testing.T) {
	idea := ScoredIdea{
		IdeaRecord: IdeaRecord{
			ID:          "A1",
			Name:        "Focus Timer",
			Category:    "Productivity",
			Description: "Simple pomodoro timer",
		},
		ScoreResult: ScoreResult{
			TotalScore: 72,
			Breakdown:  ScoreBreakdown{Demand: 13, Competition: 10},
			Penalties:  []string{},
		},
	}

	jsonBytes, err := json.MarshalIndent(idea, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"id": "A1"`)
	assert.Contains(t, string(jsonBytes), `"total_score": 72`)
	assert.Contains(t, string(jsonBytes), `"score_breakdown"`)
	assert.Contains(t, string(jsonBytes), `"penalties": []`)
	assert.NotContains(t, string(jsonBytes), `"target_user"`)

	var decoded ScoredIdea
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, idea.ID, decoded.ID)
	assert.Equal(t, idea.Breakdown, decoded.Breakdown)
}
