// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifacts writes derived result files: the full scored set, the
// top hits, and the markdown summary. Writes are fire-and-forget; failures
// are logged and reported as warnings, never as errors.
package artifacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/screening-engine/pkg/types"
)

const (
	dockingFile = "docking_results.csv"
	hitsFile    = "top_hits.csv"
	summaryFile = "summary.md"
)

// Store writes result artifacts under OutputDir.
type Store struct {
	OutputDir string
	Log       *zap.Logger
}

// Save writes whichever artifacts the result record has data for. It
// returns the paths written and a warning per failed write.
func (s Store) Save(res *types.ScreeningResult) (files []string, warnings []string) {
	if res == nil {
		return nil, nil
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return nil, []string{s.warn("creating output directory", err)}
	}

	if len(res.DockingResults) > 0 {
		path := filepath.Join(s.OutputDir, dockingFile)
		if err := writeScoresCSV(path, res.DockingResults, false); err != nil {
			warnings = append(warnings, s.warn("writing "+dockingFile, err))
		} else {
			files = append(files, path)
		}
	}

	if len(res.TopHits) > 0 {
		path := filepath.Join(s.OutputDir, hitsFile)
		if err := writeScoresCSV(path, res.TopHits, true); err != nil {
			warnings = append(warnings, s.warn("writing "+hitsFile, err))
		} else {
			files = append(files, path)
		}
	}

	if res.Summary != "" {
		path := filepath.Join(s.OutputDir, summaryFile)
		if err := os.WriteFile(path, []byte(res.Summary), 0o644); err != nil {
			warnings = append(warnings, s.warn("writing "+summaryFile, err))
		} else {
			files = append(files, path)
		}
	}

	return files, warnings
}

func (s Store) warn(action string, err error) string {
	s.Log.Warn("artifact write failed", zap.String("action", action), zap.Error(err))
	return fmt.Sprintf("%s: %v", action, err)
}

// writeScoresCSV writes docking scores as CSV. The rank column is included
// only for ranked sets.
func writeScoresCSV(path string, scores []types.DockingScore, ranked bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"ligand_id", "smiles", "docking_score"}
	if ranked {
		header = append([]string{"rank"}, header...)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, sc := range scores {
		row := []string{
			sc.LigandID,
			sc.SMILES,
			strconv.FormatFloat(sc.Score, 'f', 2, 64),
		}
		if ranked {
			row = append([]string{strconv.Itoa(sc.Rank)}, row...)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
