package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateEmpty(t *testing.T) {
	pred := NewPredicate()
	assert.Equal(t, "", pred.Where())
	assert.Equal(t, "", pred.Conditions())
	assert.Empty(t, pred.Params())
}

func TestPredicateJoinsWithAnd(t *testing.T) {
	pred := NewPredicate()
	pred.Add("d.type = 'bill'", nil)
	pred.Add("d.congress = $congress", map[string]any{"congress": int64(20)})
	pred.Add("d.subtype = $type", map[string]any{"type": "HB"})

	assert.Equal(t, "WHERE d.type = 'bill' AND d.congress = $congress AND d.subtype = $type", pred.Where())
	assert.Equal(t, map[string]any{"congress": int64(20), "type": "HB"}, pred.Params())
}

func TestPredicateParamsMergeAcrossClauses(t *testing.T) {
	pred := NewPredicate()
	pred.Add("c.start_year <= $year", map[string]any{"year": int64(2022)})
	pred.Add("c.ordinal = $ordinal", map[string]any{"ordinal": "19th"})

	params := pred.Params()
	assert.Len(t, params, 2)
	assert.Equal(t, int64(2022), params["year"])
	assert.Equal(t, "19th", params["ordinal"])
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "ASC", Direction("asc", "DESC"))
	assert.Equal(t, "ASC", Direction("ASC", "DESC"))
	assert.Equal(t, "DESC", Direction("desc", "ASC"))
	assert.Equal(t, "DESC", Direction("", "DESC"))
	assert.Equal(t, "ASC", Direction("sideways", "ASC"))
}
