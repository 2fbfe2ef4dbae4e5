// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the screening-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the screening-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "screening-engine",
	Short: "Virtual screening pipeline with session memory",
	Long: `screening-engine coordinates a multi-step virtual screening pipeline:
resolve a protein target, build a compound library, dock and score each
compound, rank the top hits, and render a summary report. Session memory
carries the last target and library size between runs, so follow-up queries
can omit them.

Queries are processed through the process subcommand (JSON query file) or
through the screen, ask, and memory conveniences.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./screening-engine.yaml or ~/.config/screening-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("screening-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "screening-engine"))
		}
	}

	viper.SetDefault("session.path", "session_memory.json")
	viper.SetDefault("knowledge.db_path", filepath.Join("knowledge", "screening.db"))
	viper.SetDefault("knowledge.topic_pack", "")
	viper.SetDefault("artifacts.output_dir", "output")
	viper.SetDefault("logging.path", "screening-engine.log")
	viper.SetDefault("logging.debug", false)
	viper.SetDefault("library.default_size", 10)
	viper.SetDefault("ranking.default_top_n", 5)

	viper.SetEnvPrefix("SCREENING_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
