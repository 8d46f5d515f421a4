package graph

import "strings"

// clause is a single WHERE condition together with the parameters it binds.
type clause struct {
	expr   string
	params map[string]any
}

// Predicate accumulates WHERE conditions and their parameter bindings, and
// renders them once at the end. A count query and its paginated data query
// are rendered from the same Predicate, so the two can never disagree on
// the filter.
type Predicate struct {
	clauses []clause
}

// NewPredicate returns an empty predicate.
func NewPredicate() *Predicate {
	return &Predicate{}
}

// Add appends a condition. params may be nil for conditions that bind
// nothing (e.g. literal comparisons).
func (p *Predicate) Add(expr string, params map[string]any) *Predicate {
	p.clauses = append(p.clauses, clause{expr: expr, params: params})
	return p
}

// Where renders the conditions as a WHERE clause joined with AND, or the
// empty string when no conditions were added.
func (p *Predicate) Where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	exprs := make([]string, len(p.clauses))
	for i, c := range p.clauses {
		exprs[i] = c.expr
	}
	return "WHERE " + strings.Join(exprs, " AND ")
}

// Conditions renders the conditions joined with AND, without the WHERE
// keyword, for queries that splice the predicate into an existing clause.
func (p *Predicate) Conditions() string {
	if len(p.clauses) == 0 {
		return ""
	}
	exprs := make([]string, len(p.clauses))
	for i, c := range p.clauses {
		exprs[i] = c.expr
	}
	return strings.Join(exprs, " AND ")
}

// Params merges the bindings of every clause into one parameter map.
func (p *Predicate) Params() map[string]any {
	out := make(map[string]any)
	for _, c := range p.clauses {
		for k, v := range c.params {
			out[k] = v
		}
	}
	return out
}

// Direction normalizes a sort direction. Accepts asc/desc in any case and
// falls back to the given default for anything else.
func Direction(dir, fallback string) string {
	switch strings.ToUpper(dir) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	default:
		return fallback
	}
}
