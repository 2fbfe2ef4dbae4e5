// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/screening-engine/pkg/types"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Inspect or clear session memory",
}

var memoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session context",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(types.Query{MemoryOp: types.MemoryGetContext})
	},
}

var memoryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset session memory to a fresh state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(types.Query{MemoryOp: types.MemoryClear})
	},
}

func init() {
	memoryCmd.AddCommand(memoryShowCmd)
	memoryCmd.AddCommand(memoryClearCmd)

	rootCmd.AddCommand(memoryCmd)
}
