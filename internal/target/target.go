// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package target resolves protein target inputs to standardized PDB records.
package target

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// proteinMap maps supported protein names to their PDB IDs.
var proteinMap = map[string]string{
	"EGFR":  "1A4G",
	"ACE2":  "6M0J",
	"BRAF":  "5VAM",
	"ALK":   "3LCS",
	"CDK2":  "1HCK",
	"VEGFR": "3V2A",
	"BCL2":  "2W3L",
	"HSP90": "3T0Z",
	"MTOR":  "4JT5",
	"PI3K":  "5XGH",
}

// defaultChain is the protein chain used for docking. Multi-chain selection
// is out of scope for the catalog targets.
const defaultChain = "A"

// Resolver validates and standardizes protein target inputs.
type Resolver struct{}

// Resolve accepts a protein name from the supported catalog or a raw
// four-character PDB ID. Catalog names win over the PDB ID form so that
// four-letter names like EGFR resolve to their mapped structure.
// Unrecognized input returns a *types.StageError listing the valid names.
func (Resolver) Resolve(target string) (types.TargetInfo, error) {
	normalized := strings.ToUpper(strings.TrimSpace(target))

	if pdbID, ok := proteinMap[normalized]; ok {
		return types.TargetInfo{
			TargetID:   pdbID,
			Chain:      defaultChain,
			TargetName: normalized,
		}, nil
	}

	if isPDBID(normalized) {
		return types.TargetInfo{
			TargetID:   normalized,
			Chain:      defaultChain,
			TargetName: nameForID(normalized),
		}, nil
	}

	return types.TargetInfo{}, &types.StageError{
		Stage:            "target",
		Message:          fmt.Sprintf("unknown target: %s", normalized),
		AvailableTargets: Available(),
	}
}

// Available returns the supported protein names in sorted order.
func Available() []string {
	names := make([]string, 0, len(proteinMap))
	for name := range proteinMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isPDBID reports whether s looks like a PDB ID: exactly four alphanumeric
// characters.
func isPDBID(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// nameForID reverse-maps a PDB ID to its protein name, or "Unknown" when the
// ID is not in the catalog.
func nameForID(pdbID string) string {
	for name, id := range proteinMap {
		if id == pdbID {
			return name
		}
	}
	return "Unknown"
}
