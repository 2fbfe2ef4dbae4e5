// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/internal/artifacts"
	"github.com/pdiddy/screening-engine/internal/docking"
	"github.com/pdiddy/screening-engine/internal/knowledge"
	"github.com/pdiddy/screening-engine/internal/library"
	"github.com/pdiddy/screening-engine/internal/logging"
	"github.com/pdiddy/screening-engine/internal/orchestrator"
	"github.com/pdiddy/screening-engine/internal/ranking"
	"github.com/pdiddy/screening-engine/internal/report"
	"github.com/pdiddy/screening-engine/internal/session"
	"github.com/pdiddy/screening-engine/internal/target"
	"github.com/pdiddy/screening-engine/pkg/types"
)

// pipelineConfig assembles the stage configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Library: types.LibraryConfig{
			DefaultSize: viper.GetInt("library.default_size"),
		},
		Ranking: types.RankingConfig{
			DefaultTopN: viper.GetInt("ranking.default_top_n"),
		},
		Knowledge: types.KnowledgeConfig{
			DBPath:    viper.GetString("knowledge.db_path"),
			TopicPack: viper.GetString("knowledge.topic_pack"),
		},
		Session: types.SessionConfig{
			Path: viper.GetString("session.path"),
		},
		Artifacts: types.ArtifactsConfig{
			OutputDir: viper.GetString("artifacts.output_dir"),
		},
		Logging: types.LoggingConfig{
			Path:  viper.GetString("logging.path"),
			Debug: viper.GetBool("logging.debug"),
		},
	}
}

// engine bundles the orchestrator with the resources that need teardown.
type engine struct {
	orch *orchestrator.Orchestrator
	kb   *knowledge.Store
	log  *zap.Logger
}

// newEngine builds the full pipeline from configuration.
func newEngine() (*engine, error) {
	cfg := pipelineConfig()
	log := logging.New(cfg.Logging)

	kb, err := knowledge.Open(cfg.Knowledge, log)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge base: %w", err)
	}

	mem := session.Open(cfg.Session.Path, log)

	orch := orchestrator.New(orchestrator.Config{
		Resolver:  target.Resolver{},
		Library:   library.Provider{DefaultSize: cfg.Library.DefaultSize, Log: log},
		Scorer:    docking.Scorer{},
		Ranker:    ranking.Ranker{DefaultTopN: cfg.Ranking.DefaultTopN},
		Reporter:  report.Generator{},
		Knowledge: kb,
		Artifacts: artifacts.Store{OutputDir: cfg.Artifacts.OutputDir, Log: log},
		Memory:    mem,
		Log:       log,
	})

	return &engine{orch: orch, kb: kb, log: log}, nil
}

// close releases engine resources.
func (e *engine) close() {
	if err := e.kb.Close(); err != nil {
		e.log.Warn("closing knowledge base failed", zap.Error(err))
	}
	// Sync fails on stderr on some platforms; nothing actionable either way.
	_ = e.log.Sync()
}

// runQuery processes q and prints the result record to stdout. The result's
// internal status is data, not a process failure: the command succeeds
// whenever a result was produced.
func runQuery(q types.Query) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	res := e.orch.Process(context.Background(), q)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
