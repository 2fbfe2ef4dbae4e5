// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge answers free-text chemistry questions from a SQLite
// topic base. Topics are seeded on first open and can be extended through a
// YAML topic pack.
package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/screening-engine/pkg/types"
)

// Topic is one knowledge base entry. Keywords are matched as lowercase
// substrings of the question, in slice order.
type Topic struct {
	Key      string   `json:"key" yaml:"key"`
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"content"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Store manages the knowledge base SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the knowledge base at cfg.DBPath, creates the
// schema, seeds the built-in topics when the base is empty, and merges the
// optional topic pack over the seed.
func Open(cfg types.KnowledgeConfig, log *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating knowledge directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, log: log}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding topics: %w", err)
	}
	if cfg.TopicPack != "" {
		if err := s.loadTopicPack(cfg.TopicPack); err != nil {
			db.Close()
			return nil, fmt.Errorf("loading topic pack: %w", err)
		}
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS topics (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS topic_keywords (
			topic_key TEXT NOT NULL REFERENCES topics(key) ON DELETE CASCADE,
			keyword TEXT NOT NULL,
			priority INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_keywords_topic ON topic_keywords(topic_key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// seed inserts the built-in topics when the base is empty. Reopening an
// already-seeded base leaves it untouched.
func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM topics`).Scan(&count); err != nil {
		return fmt.Errorf("counting topics: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.upsertTopics(builtinTopics)
}

// loadTopicPack merges topics from a YAML file over the current base.
// Topics with an existing key replace the seeded entry.
func (s *Store) loadTopicPack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var topics []Topic
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return s.upsertTopics(topics)
}

func (s *Store) upsertTopics(topics []Topic) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for priority, t := range topics {
		_, err := tx.Exec(
			`INSERT INTO topics (key, title, content) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET title=excluded.title, content=excluded.content`,
			t.Key, t.Title, t.Content,
		)
		if err != nil {
			return fmt.Errorf("upserting topic %s: %w", t.Key, err)
		}
		if _, err := tx.Exec(`DELETE FROM topic_keywords WHERE topic_key = ?`, t.Key); err != nil {
			return fmt.Errorf("clearing keywords for %s: %w", t.Key, err)
		}
		for _, kw := range t.Keywords {
			_, err := tx.Exec(
				`INSERT INTO topic_keywords (topic_key, keyword, priority) VALUES (?, ?, ?)`,
				t.Key, kw, priority,
			)
			if err != nil {
				return fmt.Errorf("inserting keyword %q: %w", kw, err)
			}
		}
	}

	return tx.Commit()
}

// Topics returns all topics ordered by key.
func (s *Store) Topics(ctx context.Context) ([]Topic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, title, content FROM topics ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("querying topics: %w", err)
	}
	defer rows.Close()

	var topics []Topic
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.Key, &t.Title, &t.Content); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}
