// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

func testProvider() Provider {
	return Provider{DefaultSize: 10, Log: zap.NewNop()}
}

func TestGenerateExactSize(t *testing.T) {
	compounds, err := testProvider().Generate(10)
	require.NoError(t, err)
	require.Len(t, compounds, 10)

	seen := map[string]bool{}
	for _, c := range compounds {
		assert.NotEmpty(t, c.SMILES)
		assert.False(t, seen[c.SMILES], "no duplicate compounds")
		seen[c.SMILES] = true
	}
}

func TestGenerateLigandIDs(t *testing.T) {
	compounds, err := testProvider().Generate(3)
	require.NoError(t, err)
	require.Len(t, compounds, 3)
	assert.Equal(t, "L1", compounds[0].LigandID)
	assert.Equal(t, "L2", compounds[1].LigandID)
	assert.Equal(t, "L3", compounds[2].LigandID)
}

func TestGenerateZeroUsesDefault(t *testing.T) {
	compounds, err := testProvider().Generate(0)
	require.NoError(t, err)
	assert.Len(t, compounds, 10)
}

func TestGenerateNegativeFails(t *testing.T) {
	_, err := testProvider().Generate(-3)
	require.Error(t, err)

	var se *types.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "library", se.Stage)
}

func TestGenerateClampsToCatalog(t *testing.T) {
	compounds, err := testProvider().Generate(1000)
	require.NoError(t, err)
	assert.Len(t, compounds, CatalogSize())
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := testProvider().Generate(15)
	require.NoError(t, err)
	b, err := testProvider().Generate(15)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoadCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ligands.smi")
	content := "CCO\n\nc1ccccc1\n  CC(=O)O  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	compounds := testProvider().LoadCustom(path)
	require.Len(t, compounds, 3)
	assert.Equal(t, types.Compound{LigandID: "L1", SMILES: "CCO"}, compounds[0])
	assert.Equal(t, types.Compound{LigandID: "L2", SMILES: "c1ccccc1"}, compounds[1])
	assert.Equal(t, types.Compound{LigandID: "L3", SMILES: "CC(=O)O"}, compounds[2])
}

func TestLoadCustomMissingFile(t *testing.T) {
	compounds := testProvider().LoadCustom(filepath.Join(t.TempDir(), "absent.smi"))
	assert.Empty(t, compounds)
}
