// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session persists carried-over query context between runs: the last
// target, the last library size, and bounded query/result histories. The
// store is write-through JSON with best-effort durability: load and save
// failures are logged, never raised.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// historyLimit bounds each history to the most recent entries.
const historyLimit = 10

// QueryEntry is one remembered query.
type QueryEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Query     types.Query `json:"query"`
}

// ResultEntry is the remembered summary of one result. The full result
// record is never persisted.
type ResultEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target,omitempty"`
	BestScore *float64  `json:"best_score,omitempty"`
	NumHits   int       `json:"num_hits"`
}

// State is the persisted session record. It round-trips losslessly through
// save and load.
type State struct {
	SessionID       string        `json:"session_id"`
	LastTarget      string        `json:"last_target,omitempty"`
	LastLibrarySize int           `json:"last_library_size,omitempty"`
	QueryHistory    []QueryEntry  `json:"query_history"`
	ResultsHistory  []ResultEntry `json:"results_history"`
}

// Memory is the process-wide session store. The mutex guards the
// load-modify-persist sequence, which is not otherwise atomic.
type Memory struct {
	mu    sync.Mutex
	path  string
	state State
	log   *zap.Logger
}

// Open loads the session store from path, falling back to a fresh state
// with a new session ID when the file is missing or unreadable.
func Open(path string, log *zap.Logger) *Memory {
	m := &Memory{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("loading session memory failed, starting fresh",
				zap.String("path", path), zap.Error(err))
		}
		m.state = freshState()
		return m
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil || state.SessionID == "" {
		log.Warn("session memory file is corrupt, starting fresh",
			zap.String("path", path), zap.Error(err))
		m.state = freshState()
		return m
	}

	m.state = state
	return m
}

func freshState() State {
	return State{
		SessionID:      uuid.NewString(),
		QueryHistory:   []QueryEntry{},
		ResultsHistory: []ResultEntry{},
	}
}

// Context returns the read-only snapshot for the get_context operation.
func (m *Memory) Context() types.MemoryContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return types.MemoryContext{
		LastTarget:      m.state.LastTarget,
		LastLibrarySize: m.state.LastLibrarySize,
		QueriesCount:    len(m.state.QueryHistory),
		SessionID:       m.state.SessionID,
	}
}

// LastTarget returns the remembered target, empty when none.
func (m *Memory) LastTarget() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LastTarget
}

// LastLibrarySize returns the remembered library size, zero when none.
func (m *Memory) LastLibrarySize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LastLibrarySize
}

// Update records a completed query and its result summary, refreshes the
// carried-over parameters, truncates each history to the most recent
// entries, and persists.
func (m *Memory) Update(q types.Query, res *types.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()

	if q.Target != "" {
		m.state.LastTarget = q.Target
	}
	if q.LibrarySize > 0 {
		m.state.LastLibrarySize = q.LibrarySize
	}

	m.state.QueryHistory = append(m.state.QueryHistory, QueryEntry{
		Timestamp: now,
		Query:     q,
	})

	if res != nil {
		entry := ResultEntry{Timestamp: now}
		if res.Results != nil {
			entry.Target = res.Results.TargetID
			entry.BestScore = res.Results.BestScore
			entry.NumHits = len(res.Results.TopHits)
		}
		m.state.ResultsHistory = append(m.state.ResultsHistory, entry)
	}

	m.state.QueryHistory = truncateQueries(m.state.QueryHistory)
	m.state.ResultsHistory = truncateResults(m.state.ResultsHistory)

	m.persist()
}

// Clear resets the store to a fresh empty state with a new session ID and
// persists.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = freshState()
	m.persist()
}

// Snapshot returns a deep copy of the persisted state.
func (m *Memory) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.state
	out.QueryHistory = append([]QueryEntry(nil), m.state.QueryHistory...)
	out.ResultsHistory = append([]ResultEntry(nil), m.state.ResultsHistory...)
	return out
}

// persist writes the state through to disk. Failures are logged and
// swallowed; durability is best-effort. Callers hold the mutex.
func (m *Memory) persist() {
	data, err := json.MarshalIndent(&m.state, "", "  ")
	if err != nil {
		m.log.Error("encoding session memory failed", zap.Error(err))
		return
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			m.log.Error("creating session memory directory failed",
				zap.String("path", m.path), zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		m.log.Error("saving session memory failed",
			zap.String("path", m.path), zap.Error(err))
	}
}

func truncateQueries(entries []QueryEntry) []QueryEntry {
	if len(entries) > historyLimit {
		return append([]QueryEntry(nil), entries[len(entries)-historyLimit:]...)
	}
	return entries
}

func truncateResults(entries []ResultEntry) []ResultEntry {
	if len(entries) > historyLimit {
		return append([]ResultEntry(nil), entries[len(entries)-historyLimit:]...)
	}
	return entries
}
