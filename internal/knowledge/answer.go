// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// fallbackAnswer is returned when the database cannot be queried at all.
const fallbackAnswer = "The knowledge base is currently unavailable. Please try again."

// Answer finds the topic whose keywords match the question and returns its
// content. Keyword matching is a lowercase substring check in seed-priority
// order. With no match, the answer lists the available topics. Database
// failures are logged and degrade to a fixed fallback; this path never
// fails the caller.
func (s *Store) Answer(ctx context.Context, question string) string {
	q := strings.ToLower(question)

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.content, k.keyword
		 FROM topic_keywords k JOIN topics t ON t.key = k.topic_key
		 ORDER BY k.priority, k.rowid`)
	if err != nil {
		s.log.Error("querying knowledge keywords failed", zap.Error(err))
		return fallbackAnswer
	}
	defer rows.Close()

	for rows.Next() {
		var content, keyword string
		if err := rows.Scan(&content, &keyword); err != nil {
			s.log.Error("scanning knowledge keyword failed", zap.Error(err))
			return fallbackAnswer
		}
		if strings.Contains(q, strings.ToLower(keyword)) {
			return content
		}
	}
	if err := rows.Err(); err != nil {
		s.log.Error("iterating knowledge keywords failed", zap.Error(err))
		return fallbackAnswer
	}

	return s.defaultAnswer(ctx)
}

// defaultAnswer enumerates the available topics for questions the base does
// not cover.
func (s *Store) defaultAnswer(ctx context.Context) string {
	topics, err := s.Topics(ctx)
	if err != nil {
		s.log.Error("listing knowledge topics failed", zap.Error(err))
		return fallbackAnswer
	}

	var b strings.Builder
	b.WriteString("I don't have specific information about that topic in my knowledge base.\n\n")
	b.WriteString("Available topics include:\n")
	for _, t := range topics {
		b.WriteString("- ")
		b.WriteString(t.Title)
		b.WriteString("\n")
	}
	b.WriteString("\nPlease ask about one of these topics for detailed information.")
	return b.String()
}
