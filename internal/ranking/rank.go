package ranking

import (
	"sort"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// RankIdeas scores every idea and sorts them by total score, descending.
// Ideas with equal scores keep their document order.
func RankIdeas(ideas []types.IdeaRecord, scorer *Scorer) *types.RankedIdeas {
	ranked := make([]types.ScoredIdea, 0, len(ideas))
	for i := range ideas {
		ranked = append(ranked, types.ScoredIdea{
			IdeaRecord:  ideas[i],
			ScoreResult: scorer.Score(&ideas[i]),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	return &types.RankedIdeas{Ranked: ranked}
}
