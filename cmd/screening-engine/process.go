// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/screening-engine/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a query file through the orchestrator",
	Long: `Process reads a JSON query file, runs it through the orchestrator, and
prints the result record to stdout. Recognized query keys: target,
library_size, question, memory_operation, smiles_file, top_n, skip_summary.

The result always carries a status field; a failed screening run is still a
successful process invocation.`,
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	queryFile, _ := cmd.Flags().GetString("query")
	if queryFile == "" {
		return fmt.Errorf("query file required: use --query")
	}

	// A query file that cannot be loaded fails before the pipeline is built.
	data, err := os.ReadFile(queryFile)
	if err != nil {
		return fmt.Errorf("loading query file: %w", err)
	}
	var q types.Query
	if err := json.Unmarshal(data, &q); err != nil {
		return fmt.Errorf("parsing query file %s: %w", queryFile, err)
	}

	return runQuery(q)
}

func init() {
	processCmd.Flags().String("query", "", "JSON file containing the query")

	rootCmd.AddCommand(processCmd)
}
