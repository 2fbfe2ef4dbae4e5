// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

func testMemory(t *testing.T) (*Memory, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session_memory.json")
	return Open(path, zap.NewNop()), path
}

func screeningResult(target string, best float64, hits int) *types.Result {
	res := &types.Result{
		Status: types.StatusSuccess,
		Results: &types.ScreeningResult{
			TargetInfo: types.TargetInfo{TargetID: target},
			BestScore:  &best,
			TopHits:    make([]types.DockingScore, hits),
		},
	}
	return res
}

func TestOpenFreshState(t *testing.T) {
	m, _ := testMemory(t)

	ctx := m.Context()
	assert.NotEmpty(t, ctx.SessionID)
	assert.Empty(t, ctx.LastTarget)
	assert.Zero(t, ctx.LastLibrarySize)
	assert.Zero(t, ctx.QueriesCount)
}

func TestUpdateSetsLastUsedParameters(t *testing.T) {
	m, _ := testMemory(t)

	m.Update(types.Query{Target: "EGFR", LibrarySize: 15}, screeningResult("1A4G", -9.1, 5))

	assert.Equal(t, "EGFR", m.LastTarget())
	assert.Equal(t, 15, m.LastLibrarySize())
	assert.Equal(t, 1, m.Context().QueriesCount)
}

func TestUpdateKeepsParametersWhenAbsent(t *testing.T) {
	m, _ := testMemory(t)

	m.Update(types.Query{Target: "BRAF", LibrarySize: 20}, screeningResult("5VAM", -8.2, 5))
	m.Update(types.Query{Question: "what is docking"}, &types.Result{Status: types.StatusSuccess})

	assert.Equal(t, "BRAF", m.LastTarget())
	assert.Equal(t, 20, m.LastLibrarySize())
}

func TestUpdateRecordsResultSummary(t *testing.T) {
	m, _ := testMemory(t)

	m.Update(types.Query{Target: "EGFR"}, screeningResult("1A4G", -9.1, 5))

	state := m.Snapshot()
	require.Len(t, state.ResultsHistory, 1)
	entry := state.ResultsHistory[0]
	assert.Equal(t, "1A4G", entry.Target)
	require.NotNil(t, entry.BestScore)
	assert.Equal(t, -9.1, *entry.BestScore)
	assert.Equal(t, 5, entry.NumHits)
}

func TestHistoriesBoundedToTen(t *testing.T) {
	m, _ := testMemory(t)

	for i := 0; i < 15; i++ {
		m.Update(types.Query{Target: "EGFR", LibrarySize: i + 1}, screeningResult("1A4G", -8.0, 5))
	}

	state := m.Snapshot()
	require.Len(t, state.QueryHistory, 10)
	require.Len(t, state.ResultsHistory, 10)

	// The retained entries are the 10 most recent, in call order.
	for i, entry := range state.QueryHistory {
		assert.Equal(t, i+6, entry.Query.LibrarySize)
	}
}

func TestRoundTrip(t *testing.T) {
	m, path := testMemory(t)

	m.Update(types.Query{Target: "EGFR", LibrarySize: 10}, screeningResult("1A4G", -9.1, 5))
	m.Update(types.Query{Question: "what is admet"}, &types.Result{Status: types.StatusSuccess})
	before := m.Snapshot()

	reloaded := Open(path, zap.NewNop())
	assert.Equal(t, before, reloaded.Snapshot())
}

func TestClearResetsState(t *testing.T) {
	m, path := testMemory(t)

	m.Update(types.Query{Target: "EGFR", LibrarySize: 10}, screeningResult("1A4G", -9.1, 5))
	oldID := m.Context().SessionID

	m.Clear()

	ctx := m.Context()
	assert.NotEqual(t, oldID, ctx.SessionID)
	assert.Empty(t, ctx.LastTarget)
	assert.Zero(t, ctx.LastLibrarySize)
	assert.Zero(t, ctx.QueriesCount)

	// Clear persists: a reload sees the fresh state.
	reloaded := Open(path, zap.NewNop())
	assert.Equal(t, ctx.SessionID, reloaded.Context().SessionID)
}

func TestOpenCorruptFileFallsBackToFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_memory.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m := Open(path, zap.NewNop())
	assert.NotEmpty(t, m.Context().SessionID)
	assert.Zero(t, m.Context().QueriesCount)
}

func TestPersistedLayout(t *testing.T) {
	m, path := testMemory(t)
	m.Update(types.Query{Target: "EGFR", LibrarySize: 10}, screeningResult("1A4G", -9.1, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"session_id", "last_target", "last_library_size", "query_history", "results_history"} {
		assert.Contains(t, raw, field, fmt.Sprintf("field %s missing from persisted record", field))
	}
}
