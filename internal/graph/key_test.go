package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyNumeric(t *testing.T) {
	key := ParseKey("20")
	assert.True(t, key.IsNumeric())
	assert.Equal(t, int64(20), key.Number())
	assert.Equal(t, "20", key.Raw())
}

func TestParseKeyOpaque(t *testing.T) {
	key := ParseKey("01J5XV9Q2W3E4R5T6Y7U8I9O0P")
	assert.False(t, key.IsNumeric())
	assert.Equal(t, "01J5XV9Q2W3E4R5T6Y7U8I9O0P", key.OpaqueID())
	assert.Equal(t, "01J5XV9Q2W3E4R5T6Y7U8I9O0P", key.Raw())
}

func TestParseKeyMixedDigitsAndLetters(t *testing.T) {
	// Bill codes like HB00001 start with letters; anything not all-digits
	// is an opaque key.
	key := ParseKey("HB00001")
	assert.False(t, key.IsNumeric())
}

func TestParseKeySignedStringsAreOpaque(t *testing.T) {
	for _, raw := range []string{"+5", "-5", ""} {
		key := ParseKey(raw)
		assert.False(t, key.IsNumeric(), raw)
		assert.Equal(t, raw, key.OpaqueID())
	}
}

func TestKeyConstructors(t *testing.T) {
	assert.True(t, ByNumber(19).IsNumeric())
	assert.Equal(t, int64(19), ByNumber(19).Number())
	assert.False(t, ByOpaqueID("abc").IsNumeric())
	assert.Equal(t, "abc", ByOpaqueID("abc").OpaqueID())
}
