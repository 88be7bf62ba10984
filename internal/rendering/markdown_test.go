package rendering

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xAxiom/AppFactory/internal/types"
)

func scoredFixture() types.ScoredIdea {
	return types.ScoredIdea{
		IdeaRecord: types.IdeaRecord{
			ID:          "A1",
			Name:        "Workout Streaks",
			Category:    "Health & Fitness",
			Description: "I'm frustrated trying to track my daily workouts",
			RawContent:  "**Name**: Workout Streaks\n**Description**: I'm frustrated trying to track my daily workouts",
		},
		ScoreResult: types.ScoreResult{
			TotalScore: 82,
			Breakdown: types.ScoreBreakdown{
				Demand:         20,
				WillingnessPay: 17,
				Competition:    10,
				Retention:      13,
				MVPFeasibility: 11,
				Monetization:   7,
				PolicyRisk:     4,
			},
			Penalties:     []string{},
			Justification: "High demand",
		},
	}
}

func TestRenderSelection(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	decision := &types.SelectionDecision{
		ID:         id,
		Idea:       scoredFixture(),
		Rank:       1,
		Method:     types.SelectionMethodAuto,
		SelectedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	doc, err := RenderSelection(decision)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Idea Selection\n"))
	assert.Contains(t, doc, "### Idea A1: Workout Streaks")
	assert.Contains(t, doc, "- **Total Score**: 82/100")
	assert.Contains(t, doc, "- **Key Strengths**: High demand")
	assert.Contains(t, doc, "  - Demand/Pain Intensity: 20/20\n")
	assert.Contains(t, doc, "  - Willingness to Pay: 17/20\n")
	assert.Contains(t, doc, "  - Competition Level: 10/15\n")
	assert.Contains(t, doc, "  - Retention Loop: 13/15\n")
	assert.Contains(t, doc, "  - MVP Feasibility: 11/15\n")
	assert.Contains(t, doc, "  - Monetization Fit: 7/10\n")
	assert.Contains(t, doc, "  - Policy/Store Risk: 4/5\n")
	assert.Contains(t, doc, "**Date**: 2026-03-14")
	assert.Contains(t, doc, "**Selection Method**: Automated scoring and ranking")
	assert.Contains(t, doc, "**Selection ID**: 550e8400-e29b-41d4-a716-446655440000")
	assert.Contains(t, doc, "**Target User**: From market research")
	assert.Contains(t, doc, "PIPELINE UNLOCKED")
	assert.NotContains(t, doc, "**Penalties**")
}

func TestRenderSelection_LowerRankWithPenalties(t *testing.T) {
	idea := scoredFixture()
	idea.Penalties = []string{"Complex infrastructure required"}
	idea.TargetUser = "Gym regulars"
	idea.Description = strings.Repeat("x", 250)

	doc, err := RenderSelection(&types.SelectionDecision{Idea: idea, Rank: 3, Method: types.SelectionMethodInteractive})
	require.NoError(t, err)

	assert.Contains(t, doc, "rank #3")
	assert.Contains(t, doc, "- **Penalties**: Complex infrastructure required\n- **Score Breakdown**:")
	assert.Contains(t, doc, "**Target User**: Gym regulars")
	assert.Contains(t, doc, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, doc, strings.Repeat("x", 201))
}

func TestRenderSelection_Nil(t *testing.T) {
	_, err := RenderSelection(nil)
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "selection.md.tmpl", docErr.Document)
	assert.EqualError(t, err, "render selection.md.tmpl: selection decision is nil")
}

func TestRenderArchive_Nil(t *testing.T) {
	_, err := RenderArchive(nil, 2, 3, time.Now())
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "archive.md.tmpl", docErr.Document)
}

func TestExecute_UnknownTemplate(t *testing.T) {
	_, err := execute("missing.md.tmpl", nil)
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "missing.md.tmpl", docErr.Document)
	assert.Error(t, errors.Unwrap(err))
}

func TestRenderArchive(t *testing.T) {
	idea := scoredFixture()
	idea.Penalties = []string{"Excluded category violation", "Complex infrastructure required"}

	doc, err := RenderArchive(&idea, 4, 10, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Archived Idea: Workout Streaks\n"))
	assert.Contains(t, doc, "**Rank**: #4/10 (Score: 82/100)")
	assert.Contains(t, doc, "**Archive Date**: 2026-03-14")
	assert.Contains(t, doc, "- **Justification**: High demand")
	assert.Contains(t, doc, "  - Policy/Store Risk: 4/5\n")
	assert.Contains(t, doc, "- **Penalties**: Excluded category violation, Complex infrastructure required")
	assert.Contains(t, doc, "## Original Idea Content\n\n**Name**: Workout Streaks")
}

func TestRenderArchive_NoPenalties(t *testing.T) {
	idea := scoredFixture()

	doc, err := RenderArchive(&idea, 2, 3, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, doc, "**Penalties**")
	assert.Contains(t, doc, "  - Policy/Store Risk: 4/5\n\n## Original Idea Content")
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Workout Streaks", "workout-streaks"},
		{"  Focus -- Timer!! ", "focus-timer"},
		{"Café & Co.", "caf-co"},
		{"AI/ML Coach 2.0", "ai-ml-coach-2-0"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestArchiveFileName(t *testing.T) {
	idea := &types.IdeaRecord{ID: "B12", Name: "Invoice Snap!"}
	assert.Equal(t, "02_B12_invoice-snap.md", ArchiveFileName(2, idea))
	assert.Equal(t, "11_B12_invoice-snap.md", ArchiveFileName(11, idea))
}
