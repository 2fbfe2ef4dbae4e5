// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ranking orders scored compounds and selects the top hits.
package ranking

import (
	"sort"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// Ranker sorts docking results and selects top hits.
type Ranker struct {
	// DefaultTopN is used when the query requests no limit (0 falls
	// back to 5).
	DefaultTopN int
}

// Rank sorts scores ascending (lower binds stronger), assigns ranks, and
// keeps the best topN as hits. A missing scored set is a stage failure.
func (r Ranker) Rank(scores []types.DockingScore, topN int) (types.Ranking, error) {
	if len(scores) == 0 {
		return types.Ranking{}, &types.StageError{
			Stage:   "ranking",
			Message: "no docking results to rank",
		}
	}
	if topN <= 0 {
		topN = r.DefaultTopN
		if topN <= 0 {
			topN = 5
		}
	}

	ranked := make([]types.DockingScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if topN > len(ranked) {
		topN = len(ranked)
	}
	best := ranked[0].Score

	return types.Ranking{
		Ranked:    ranked,
		TopHits:   ranked[:topN],
		BestScore: &best,
	}, nil
}
