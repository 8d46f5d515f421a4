// Package graph holds the pieces that sit between the HTTP layer and the
// Neo4j driver: row normalization, a structured predicate builder for
// Cypher WHERE clauses, and the entity key type used for dual-key lookups.
package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// NormalizeRecord returns a copy of a raw result row where every value has
// been passed through NormalizeValue. Pure and idempotent: normalizing an
// already-normalized row is a no-op.
func NormalizeRecord(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for key, value := range row {
		out[key] = NormalizeValue(value)
	}
	return out
}

// NormalizeValue converts engine-native values into plain Go values ready
// for JSON serialization:
//
//   - nodes and relationships collapse to their property bags, dropping
//     internal ids and labels
//   - two-field integer wrappers ({low, high} maps, as produced by literal
//     map projections over driver integers) collapse to the low word
//   - slices are normalized element-wise, and maps one level deep
//   - scalars pass through unchanged
//
// The driver already yields int64 for Cypher integers, so the wrapper case
// only arises from map-shaped projections; the low-word collapse accepts
// the 32-bit magnitude limit of the upstream data.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case dbtype.Node:
		return normalizeShallow(v.Props)
	case dbtype.Relationship:
		return normalizeShallow(v.Props)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = NormalizeValue(item)
		}
		return out
	case map[string]any:
		if low, ok := integerWrapper(v); ok {
			return low
		}
		return normalizeShallow(v)
	default:
		return value
	}
}

// normalizeShallow normalizes the values of a property bag one level deep.
func normalizeShallow(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for key, value := range props {
		switch v := value.(type) {
		case dbtype.Node:
			out[key] = v.Props
		case dbtype.Relationship:
			out[key] = v.Props
		case map[string]any:
			if low, ok := integerWrapper(v); ok {
				out[key] = low
				continue
			}
			out[key] = v
		case []any:
			out[key] = NormalizeValue(v)
		default:
			out[key] = value
		}
	}
	return out
}

// integerWrapper reports whether m is a two-word integer wrapper and, if
// so, returns its low word as an int64.
func integerWrapper(m map[string]any) (int64, bool) {
	if len(m) != 2 {
		return 0, false
	}
	low, hasLow := m["low"]
	_, hasHigh := m["high"]
	if !hasLow || !hasHigh {
		return 0, false
	}
	switch n := low.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
