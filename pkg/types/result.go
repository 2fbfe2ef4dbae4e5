// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Status tags the outcome of a stage or of a whole pipeline run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Compound is one candidate molecule in the working set.
type Compound struct {
	// LigandID is the library-local identifier, "L1".."Ln".
	LigandID string `json:"ligand_id"`

	// SMILES is the line notation for the molecular structure.
	SMILES string `json:"smiles"`
}

// DockingScore is one compound's docking outcome. Rank is zero until the
// ranking stage assigns it.
type DockingScore struct {
	LigandID string `json:"ligand_id"`
	SMILES   string `json:"smiles"`

	// Score is the predicted binding affinity. Lower is better; generated
	// scores fall in (-11, -4].
	Score float64 `json:"docking_score"`

	// Rank is the 1-based position after sorting by score ascending.
	Rank int `json:"rank,omitempty"`
}

// TargetInfo is the resolved form of a protein target.
type TargetInfo struct {
	// TargetID is the four-character PDB ID.
	TargetID string `json:"target_id"`

	// Chain is the protein chain used for docking.
	Chain string `json:"chain"`

	// TargetName is the common protein name, or "Unknown" when a raw PDB ID
	// has no known name.
	TargetName string `json:"target_name"`
}

// ScreeningResult is the cumulative merge of all stage outputs in one
// pipeline run. Each stage is authoritative for its own fields only; a field
// written by an earlier stage is never overwritten by a later one.
type ScreeningResult struct {
	TargetInfo

	// Molecules is the working set produced by the library stage.
	Molecules []Compound `json:"molecules,omitempty"`

	// LibrarySize is the actual working set size (loaded or generated).
	LibrarySize int `json:"library_size,omitempty"`

	// DockingResults holds one score per working set compound.
	DockingResults []DockingScore `json:"docking_results,omitempty"`

	// RankedResults is the full scored set sorted ascending with ranks.
	RankedResults []DockingScore `json:"ranked_results,omitempty"`

	// TopHits is the leading slice of RankedResults, length top_n at most.
	TopHits []DockingScore `json:"top_hits,omitempty"`

	// BestScore is TopHits[0].Score, nil when there are no hits.
	BestScore *float64 `json:"best_score,omitempty"`

	// Summary is the rendered markdown report. Empty when skipped or when
	// report generation failed.
	Summary string `json:"summary,omitempty"`
}

// Ranking is the output of the ranking stage.
type Ranking struct {
	// Ranked is the full scored set sorted ascending by score, each entry
	// carrying its 1-based rank.
	Ranked []DockingScore `json:"ranked_results"`

	// TopHits is the leading slice of Ranked.
	TopHits []DockingScore `json:"top_hits"`

	// BestScore is TopHits[0].Score; nil when the set is empty.
	BestScore *float64 `json:"best_score,omitempty"`
}

// MemoryContext is the read-only snapshot returned by the get_context
// memory operation.
type MemoryContext struct {
	LastTarget      string `json:"last_target,omitempty"`
	LastLibrarySize int    `json:"last_library_size,omitempty"`
	QueriesCount    int    `json:"queries_count"`
	SessionID       string `json:"session_id"`
}

// Result is the record every orchestrator call returns. Failures are data:
// callers branch on Status, not on returned errors.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`

	// Error describes the failure when Status is failed.
	Error string `json:"error,omitempty"`

	// AvailableTargets lists valid protein names when target resolution
	// failed.
	AvailableTargets []string `json:"available_targets,omitempty"`

	// Question and Answer are set for knowledge queries.
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`

	// Context is set for the get_context memory operation.
	Context *MemoryContext `json:"context,omitempty"`

	// Results is the merged screening record for successful screening runs.
	Results *ScreeningResult `json:"results,omitempty"`

	// FilesGenerated lists artifact files written for this run.
	FilesGenerated []string `json:"files_generated,omitempty"`

	// Warnings collects best-effort failures (artifact writes, report
	// generation) that did not fail the run.
	Warnings []string `json:"warnings,omitempty"`
}

// StageError is a stage failure carried as a value. The orchestrator
// converts it into a failed Result and short-circuits the pipeline.
type StageError struct {
	// Stage names the failing stage: target, library, docking, ranking,
	// report.
	Stage string

	// Message is the human-readable failure description.
	Message string

	// AvailableTargets lists valid alternatives for target resolution
	// failures.
	AvailableTargets []string
}

func (e *StageError) Error() string {
	return e.Message
}

// FailureResult converts a stage error into the failed Result returned to
// the caller.
func FailureResult(err error) Result {
	res := Result{Status: StatusFailed, Error: err.Error()}
	var se *StageError
	if errors.As(err, &se) {
		res.AvailableTargets = se.AvailableTargets
	}
	return res
}
