// Package store builds the Cypher statements for each entity, executes
// them against the graph, and maps the normalized rows onto the API
// models. Query text is assembled by pure functions so the count/data
// predicate parity and parameter bindings can be tested without a
// database.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by single-entity lookups whose key matches no
// node.
var ErrNotFound = errors.New("record not found")

// Runner abstracts query execution so the store can be exercised in tests
// with canned rows. The production implementation is the Neo4j client.
type Runner interface {
	ReadQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

// Store is the read-only repository over the legislative graph.
type Store struct {
	db Runner
}

// NewStore creates a Store backed by the given runner.
func NewStore(db Runner) *Store {
	return &Store{db: db}
}

// Ping runs a trivial query to confirm the database answers.
func (s *Store) Ping(ctx context.Context) error {
	rows, err := s.db.ReadQuery(ctx, "RETURN 1 as ping", nil)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("ping query returned no rows")
	}
	return nil
}

// count runs a count query and extracts the "total" column of its single
// row. A missing row counts as zero.
func (s *Store) count(ctx context.Context, cypher string, params map[string]any) (int64, error) {
	rows, err := s.db.ReadQuery(ctx, cypher, params)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return asInt64(rows[0]["total"]), nil
}

// --- row mapping helpers ---

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asInt64Ptr(v any) *int64 {
	if v == nil {
		return nil
	}
	n := asInt64(v)
	return &n
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asInt64Slice(v any) []int64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(items))
	for _, item := range items {
		out = append(out, asInt64(item))
	}
	return out
}

func asMapSlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
