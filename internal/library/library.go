// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library produces the compound working set, either by deterministic
// selection from the built-in SMILES catalog or by loading a custom SMILES
// file.
package library

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// catalog is the built-in SMILES collection the generator samples from.
var catalog = []string{
	"CCO",                       // ethanol
	"c1ccccc1",                  // benzene
	"CC(=O)O",                   // acetic acid
	"CC(C)O",                    // isopropanol
	"c1ccc(O)cc1",               // phenol
	"CC(=O)Nc1ccccc1",           // acetanilide
	"CC(C)(C)O",                 // tert-butanol
	"c1ccc(cc1)C(=O)O",          // benzoic acid
	"CCN(CC)CC",                 // triethylamine
	"C1CCCCC1",                  // cyclohexane
	"c1ccc(cc1)N",               // aniline
	"CC(=O)OC",                  // methyl acetate
	"c1ccc(cc1)Cl",              // chlorobenzene
	"CCOC(=O)C",                 // ethyl acetate
	"c1ccc(cc1)[N+](=O)[O-]",    // nitrobenzene
	"CC(C)CC",                   // isopentane
	"c1ccc(cc1)C",               // toluene
	"CC(=O)N",                   // acetamide
	"c1ccc(cc1)O[CH3]",          // anisole
	"CCCCC",                     // pentane
	"C1CCC(CC1)O",               // cyclohexanol
	"c1ccc2c(c1)cccc2",          // naphthalene
	"CC(C)C(=O)O",               // isobutyric acid
	"c1ccc(cc1)F",               // fluorobenzene
	"CCCCCO",                    // 1-pentanol
	"c1ccc(cc1)Br",              // bromobenzene
	"CC(C)C",                    // propane
	"c1ccc(cc1)I",               // iodobenzene
	"CCOCC",                     // diethyl ether
	"c1ccc(cc1)CC",              // ethylbenzene
}

// CatalogSize returns the number of compounds available to the generator.
func CatalogSize() int {
	return len(catalog)
}

// Provider builds compound working sets.
type Provider struct {
	// DefaultSize is used when a query requests no size (0 falls back to 10).
	DefaultSize int

	Log *zap.Logger
}

// Generate selects size compounds from the catalog. A zero size falls back
// to the default; a negative size is a stage failure; a size beyond the
// catalog is clamped. Selection order is a stable hash ordering of the
// catalog, so the same size always yields the same set.
func (p Provider) Generate(size int) ([]types.Compound, error) {
	if size < 0 {
		return nil, &types.StageError{
			Stage:   "library",
			Message: fmt.Sprintf("invalid library size: %d", size),
		}
	}
	if size == 0 {
		size = p.DefaultSize
		if size <= 0 {
			size = 10
		}
	}
	if size > len(catalog) {
		size = len(catalog)
	}

	selected := make([]string, len(catalog))
	copy(selected, catalog)
	sort.Slice(selected, func(i, j int) bool {
		return shuffleKey(selected[i]) < shuffleKey(selected[j])
	})
	selected = selected[:size]

	compounds := make([]types.Compound, len(selected))
	for i, smiles := range selected {
		compounds[i] = types.Compound{
			LigandID: fmt.Sprintf("L%d", i+1),
			SMILES:   smiles,
		}
	}
	return compounds, nil
}

// LoadCustom reads one SMILES string per line from path, skipping blanks.
// Read failures are logged and yield an empty set; the downstream docking
// stage rejects empty sets, which surfaces the problem to the caller.
func (p Provider) LoadCustom(path string) []types.Compound {
	f, err := os.Open(path)
	if err != nil {
		p.Log.Error("loading custom SMILES file failed",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	var compounds []types.Compound
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		smiles := strings.TrimSpace(scanner.Text())
		if smiles == "" {
			continue
		}
		compounds = append(compounds, types.Compound{
			LigandID: fmt.Sprintf("L%d", len(compounds)+1),
			SMILES:   smiles,
		})
	}
	if err := scanner.Err(); err != nil {
		p.Log.Error("reading custom SMILES file failed",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return compounds
}

// shuffleKey gives each catalog entry a stable pseudo-random position.
func shuffleKey(smiles string) string {
	sum := md5.Sum([]byte(smiles))
	return fmt.Sprintf("%x", sum)
}
