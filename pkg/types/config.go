// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LibraryConfig holds settings for the compound library stage.
type LibraryConfig struct {
	// DefaultSize is the library size used when a query specifies none and
	// session memory has nothing remembered (default 10).
	DefaultSize int `json:"default_size" yaml:"default_size"`
}

// RankingConfig holds settings for the ranking stage.
type RankingConfig struct {
	// DefaultTopN is how many hits to report when a query does not set
	// top_n (default 5).
	DefaultTopN int `json:"default_top_n" yaml:"default_top_n"`
}

// KnowledgeConfig holds settings for the knowledge base.
type KnowledgeConfig struct {
	// DBPath is the SQLite database file (default "knowledge/screening.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// TopicPack is an optional YAML file of extra topics merged over the
	// built-in seed on open.
	TopicPack string `json:"topic_pack,omitempty" yaml:"topic_pack,omitempty"`
}

// SessionConfig holds settings for the persisted session memory.
type SessionConfig struct {
	// Path is the JSON file backing the session store
	// (default "session_memory.json").
	Path string `json:"path" yaml:"path"`
}

// ArtifactsConfig holds settings for result artifact writes.
type ArtifactsConfig struct {
	// OutputDir is where docking_results.csv, top_hits.csv, and summary.md
	// are written (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// LoggingConfig holds settings for the structured logger.
type LoggingConfig struct {
	// Path is the rotating log file (default "screening-engine.log").
	Path string `json:"path" yaml:"path"`

	// Debug enables debug-level console output.
	Debug bool `json:"debug" yaml:"debug"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Library   LibraryConfig   `json:"library" yaml:"library"`
	Ranking   RankingConfig   `json:"ranking" yaml:"ranking"`
	Knowledge KnowledgeConfig `json:"knowledge" yaml:"knowledge"`
	Session   SessionConfig   `json:"session" yaml:"session"`
	Artifacts ArtifactsConfig `json:"artifacts" yaml:"artifacts"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
}
