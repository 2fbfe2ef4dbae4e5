// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifacts

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

func sampleResult() *types.ScreeningResult {
	return &types.ScreeningResult{
		DockingResults: []types.DockingScore{
			{LigandID: "L1", SMILES: "CCO", Score: -6.5},
			{LigandID: "L2", SMILES: "c1ccccc1", Score: -9.1},
		},
		TopHits: []types.DockingScore{
			{LigandID: "L2", SMILES: "c1ccccc1", Score: -9.1, Rank: 1},
		},
		Summary: "# Report\n",
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSaveWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	store := Store{OutputDir: dir, Log: zap.NewNop()}

	files, warnings := store.Save(sampleResult())
	assert.Empty(t, warnings)
	require.Len(t, files, 3)

	rows := readCSV(t, filepath.Join(dir, "docking_results.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ligand_id", "smiles", "docking_score"}, rows[0])
	assert.Equal(t, []string{"L1", "CCO", "-6.50"}, rows[1])

	rows = readCSV(t, filepath.Join(dir, "top_hits.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"rank", "ligand_id", "smiles", "docking_score"}, rows[0])
	assert.Equal(t, []string{"1", "L2", "c1ccccc1", "-9.10"}, rows[1])

	data, err := os.ReadFile(filepath.Join(dir, "summary.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(data))
}

func TestSaveSkipsMissingData(t *testing.T) {
	dir := t.TempDir()
	store := Store{OutputDir: dir, Log: zap.NewNop()}

	res := sampleResult()
	res.Summary = ""
	files, warnings := store.Save(res)

	assert.Empty(t, warnings)
	assert.Len(t, files, 2)
	_, err := os.Stat(filepath.Join(dir, "summary.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveNilResult(t *testing.T) {
	files, warnings := Store{OutputDir: t.TempDir(), Log: zap.NewNop()}.Save(nil)
	assert.Empty(t, files)
	assert.Empty(t, warnings)
}

func TestSaveUnwritableDirWarns(t *testing.T) {
	// A file standing where the output directory should be makes MkdirAll fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "output")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	store := Store{OutputDir: blocked, Log: zap.NewNop()}
	files, warnings := store.Save(sampleResult())

	assert.Empty(t, files)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "creating output directory")
}
