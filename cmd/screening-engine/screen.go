// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/screening-engine/pkg/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a screening query from flags",
	Long: `Screen builds a screening query from flags and runs it through the
orchestrator. Omitted flags fall back to session memory: a run without
--target continues against the last screened target.`,
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	q := types.Query{}
	q.Target, _ = cmd.Flags().GetString("target")
	q.LibrarySize, _ = cmd.Flags().GetInt("library-size")
	q.SMILESFile, _ = cmd.Flags().GetString("smiles-file")
	q.TopN, _ = cmd.Flags().GetInt("top-n")
	q.SkipSummary, _ = cmd.Flags().GetBool("skip-summary")

	return runQuery(q)
}

func init() {
	screenCmd.Flags().String("target", "", "protein name or PDB ID")
	screenCmd.Flags().Int("library-size", 0, "compound library size (0 = remembered or default)")
	screenCmd.Flags().String("smiles-file", "", "custom SMILES file, one compound per line")
	screenCmd.Flags().Int("top-n", 0, "number of top hits to report (0 = default)")
	screenCmd.Flags().Bool("skip-summary", false, "skip report generation")

	rootCmd.AddCommand(screenCmd)
}
