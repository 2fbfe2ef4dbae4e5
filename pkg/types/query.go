// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the screening pipeline:
// queries, stage outputs, the merged screening result, and per-stage
// configuration.
package types

// MemoryOperation selects a session memory management action.
type MemoryOperation string

const (
	MemoryGetContext MemoryOperation = "get_context"
	MemoryClear      MemoryOperation = "clear"
)

// Query is a single request to the orchestrator, typically loaded from a
// JSON file. All fields are optional; which fields are present determines
// how the query is classified. A zero value is never a valid present value,
// so the zero value means the key was absent.
type Query struct {
	// Target is a protein target: a known protein name (e.g. "EGFR")
	// or a four-character PDB ID (e.g. "1A4G").
	Target string `json:"target,omitempty"`

	// LibrarySize is the requested number of compounds in the working set.
	LibrarySize int `json:"library_size,omitempty"`

	// Question is a free-text chemistry question for the knowledge base.
	// Its presence classifies the query as a knowledge query regardless
	// of other keys.
	Question string `json:"question,omitempty"`

	// MemoryOp is a session memory management action: get_context or clear.
	MemoryOp MemoryOperation `json:"memory_operation,omitempty"`

	// SMILESFile is a path to a custom compound file, one SMILES string per
	// line. When set, the generated library is bypassed.
	SMILESFile string `json:"smiles_file,omitempty"`

	// TopN limits how many ranked hits are reported (default 5).
	TopN int `json:"top_n,omitempty"`

	// SkipSummary disables report generation for this run.
	SkipSummary bool `json:"skip_summary,omitempty"`
}

// QueryKind is the classification of a query, decided by a fixed priority
// order over the keys present (see orchestrator.Classify).
type QueryKind int

const (
	KindUnknown QueryKind = iota
	KindKnowledge
	KindMemory
	KindScreening
)

func (k QueryKind) String() string {
	switch k {
	case KindKnowledge:
		return "knowledge"
	case KindMemory:
		return "memory"
	case KindScreening:
		return "screening"
	default:
		return "unknown"
	}
}
