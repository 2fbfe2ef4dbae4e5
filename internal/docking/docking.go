// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docking assigns deterministic mock docking scores to compounds.
// The score is derived from a hash of the SMILES string and the target ID,
// so the same compound docked against the same target always scores the
// same.
package docking

import (
	"crypto/md5"
	"encoding/binary"
	"math"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// UnknownTarget is scored against when no target was resolved for the run.
const UnknownTarget = "UNKNOWN"

// Scorer produces docking scores for a working set.
type Scorer struct{}

// Score docks each compound against targetID. An empty working set is a
// stage failure. Scores fall in (-11.00, -4.00], two decimal places, lower
// meaning stronger predicted binding.
func (Scorer) Score(compounds []types.Compound, targetID string) ([]types.DockingScore, error) {
	if len(compounds) == 0 {
		return nil, &types.StageError{
			Stage:   "docking",
			Message: "no molecules to dock",
		}
	}
	if targetID == "" {
		targetID = UnknownTarget
	}

	scores := make([]types.DockingScore, len(compounds))
	for i, c := range compounds {
		scores[i] = types.DockingScore{
			LigandID: c.LigandID,
			SMILES:   c.SMILES,
			Score:    scoreFor(c.SMILES, targetID),
		}
	}
	return scores, nil
}

// scoreFor hashes smiles+targetID into a base score in [-10, -4] plus a
// two-digit fractional part.
func scoreFor(smiles, targetID string) float64 {
	sum := md5.Sum([]byte(smiles + targetID))
	h := binary.BigEndian.Uint64(sum[:8])

	base := -float64(h%7 + 4)
	fraction := float64(h%100) / 100

	return math.Round((base-fraction)*100) / 100
}
