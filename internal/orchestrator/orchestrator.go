// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orchestrator is the control core of the screening engine. It
// classifies incoming queries, fills missing parameters from session
// memory, drives the pipeline stages with short-circuit-on-failure
// semantics, merges stage outputs into one cumulative record, and records
// completed runs to session memory.
package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/internal/session"
	"github.com/pdiddy/screening-engine/pkg/types"
)

// Resolver standardizes a protein target input.
type Resolver interface {
	Resolve(target string) (types.TargetInfo, error)
}

// LibraryProvider produces the compound working set.
type LibraryProvider interface {
	Generate(size int) ([]types.Compound, error)
	LoadCustom(path string) []types.Compound
}

// Scorer docks a working set against a target.
type Scorer interface {
	Score(compounds []types.Compound, targetID string) ([]types.DockingScore, error)
}

// Ranker orders scored compounds and selects top hits.
type Ranker interface {
	Rank(scores []types.DockingScore, topN int) (types.Ranking, error)
}

// Reporter renders the markdown summary for a merged screening record.
type Reporter interface {
	Summarize(res *types.ScreeningResult) (string, error)
}

// Answerer answers free-text questions. It always produces an answer.
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

// ArtifactStore persists derived result files best-effort.
type ArtifactStore interface {
	Save(res *types.ScreeningResult) (files []string, warnings []string)
}

// Config wires the orchestrator's collaborators.
type Config struct {
	Resolver  Resolver
	Library   LibraryProvider
	Scorer    Scorer
	Ranker    Ranker
	Reporter  Reporter
	Knowledge Answerer
	Artifacts ArtifactStore
	Memory    *session.Memory
	Log       *zap.Logger
}

// Orchestrator sequences the screening pipeline. Process runs each query to
// completion synchronously; session memory carries state between calls.
type Orchestrator struct {
	cfg Config
	log *zap.Logger
}

// New builds an orchestrator from its collaborators.
func New(cfg Config) *Orchestrator {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{cfg: cfg, log: log}
}

// Classify decides how a query is handled, first match wins:
// a question is a knowledge query regardless of other keys; a memory
// operation comes next; a target or custom compound file makes it a
// screening query; a bare library size continues the previous screening
// when a last target is remembered; anything else is unknown.
func Classify(q types.Query, lastTarget string) types.QueryKind {
	switch {
	case q.Question != "":
		return types.KindKnowledge
	case q.MemoryOp != "":
		return types.KindMemory
	case q.Target != "" || q.SMILESFile != "":
		return types.KindScreening
	case q.LibrarySize > 0 && lastTarget != "":
		return types.KindScreening
	default:
		return types.KindUnknown
	}
}

// Process runs one query through the appropriate path and returns the
// result record. Failures are returned as data in the record, never as
// process errors.
func (o *Orchestrator) Process(ctx context.Context, q types.Query) types.Result {
	kind := Classify(q, o.cfg.Memory.LastTarget())
	o.log.Info("processing query", zap.Stringer("kind", kind))

	switch kind {
	case types.KindKnowledge:
		return o.processKnowledge(ctx, q)
	case types.KindMemory:
		return o.processMemory(q)
	case types.KindScreening:
		return o.processScreening(ctx, q)
	default:
		// Unknown queries never touch session memory.
		return types.Result{
			Status:  types.StatusFailed,
			Error:   "unknown query type",
			Message: "Please specify a valid query type",
		}
	}
}

// processKnowledge delegates the question verbatim and records the exchange
// unconditionally.
func (o *Orchestrator) processKnowledge(ctx context.Context, q types.Query) types.Result {
	answer := o.cfg.Knowledge.Answer(ctx, q.Question)

	res := types.Result{
		Status:   types.StatusSuccess,
		Question: q.Question,
		Answer:   answer,
	}
	o.cfg.Memory.Update(q, &res)
	return res
}

// processMemory dispatches memory management operations. These are not
// recorded as history.
func (o *Orchestrator) processMemory(q types.Query) types.Result {
	switch q.MemoryOp {
	case types.MemoryGetContext:
		snapshot := o.cfg.Memory.Context()
		return types.Result{Status: types.StatusSuccess, Context: &snapshot}
	case types.MemoryClear:
		o.cfg.Memory.Clear()
		return types.Result{Status: types.StatusSuccess, Message: "Memory cleared"}
	default:
		return types.Result{
			Status: types.StatusFailed,
			Error:  fmt.Sprintf("unknown operation: %s", q.MemoryOp),
		}
	}
}

// processScreening drives the five-stage pipeline. Resolve, library,
// docking, and ranking failures short-circuit without a memory update, so
// continuation queries never default onto a target that never resolved.
// Report failures are presentational and non-fatal.
func (o *Orchestrator) processScreening(ctx context.Context, q types.Query) types.Result {
	q = o.fillDefaults(q)

	merged := &types.ScreeningResult{}

	if q.Target != "" {
		info, err := o.cfg.Resolver.Resolve(q.Target)
		if err != nil {
			o.log.Warn("target resolution failed", zap.String("target", q.Target), zap.Error(err))
			return types.FailureResult(err)
		}
		merged.TargetInfo = info
	}

	if q.SMILESFile != "" {
		merged.Molecules = o.cfg.Library.LoadCustom(q.SMILESFile)
		merged.LibrarySize = len(merged.Molecules)
	} else {
		molecules, err := o.cfg.Library.Generate(q.LibrarySize)
		if err != nil {
			return types.FailureResult(err)
		}
		merged.Molecules = molecules
		merged.LibrarySize = len(molecules)
	}

	scores, err := o.cfg.Scorer.Score(merged.Molecules, merged.TargetID)
	if err != nil {
		return types.FailureResult(err)
	}
	merged.DockingResults = scores

	ranking, err := o.cfg.Ranker.Rank(scores, q.TopN)
	if err != nil {
		return types.FailureResult(err)
	}
	merged.RankedResults = ranking.Ranked
	merged.TopHits = ranking.TopHits
	merged.BestScore = ranking.BestScore

	var warnings []string
	if !q.SkipSummary {
		summary, err := o.cfg.Reporter.Summarize(merged)
		if err != nil {
			// Reporting is presentational; the run still succeeds.
			o.log.Warn("report generation failed", zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("report generation failed: %v", err))
		} else {
			merged.Summary = summary
		}
	}

	files, artifactWarnings := o.cfg.Artifacts.Save(merged)
	warnings = append(warnings, artifactWarnings...)

	res := types.Result{
		Status:         types.StatusSuccess,
		Message:        "Virtual screening completed successfully",
		Results:        merged,
		FilesGenerated: files,
		Warnings:       warnings,
	}
	o.cfg.Memory.Update(q, &res)
	return res
}

// fillDefaults substitutes remembered parameters for absent ones. The
// filled query is what gets recorded to history, so a continuation run
// refreshes the remembered target.
func (o *Orchestrator) fillDefaults(q types.Query) types.Query {
	if q.Target == "" {
		if last := o.cfg.Memory.LastTarget(); last != "" {
			q.Target = last
			o.log.Info("using target from memory", zap.String("target", last))
		}
	}
	if q.LibrarySize == 0 && q.SMILESFile == "" {
		if last := o.cfg.Memory.LastLibrarySize(); last > 0 {
			q.LibrarySize = last
			o.log.Info("using library size from memory", zap.Int("library_size", last))
		}
	}
	return q
}
