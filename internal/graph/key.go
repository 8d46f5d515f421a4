package graph

import "strconv"

// Key identifies an entity either by its numeric business key (e.g. a
// congress number) or by its opaque id. It is parsed once at the handler
// boundary so downstream code never re-sniffs the ambiguous path segment.
type Key struct {
	number  int64
	id      string
	numeric bool
}

// ParseKey classifies a path segment: all-digits means a numeric business
// key, anything else an opaque id. Signed forms like "-5" are opaque ids,
// not numbers.
func ParseKey(raw string) Key {
	if isDigits(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Key{number: n, numeric: true}
		}
	}
	return Key{id: raw}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ByNumber builds a numeric business key directly.
func ByNumber(n int64) Key {
	return Key{number: n, numeric: true}
}

// ByOpaqueID builds an opaque id key directly.
func ByOpaqueID(id string) Key {
	return Key{id: id}
}

// IsNumeric reports whether the key is a numeric business key.
func (k Key) IsNumeric() bool {
	return k.numeric
}

// Number returns the numeric business key. Only meaningful when IsNumeric.
func (k Key) Number() int64 {
	return k.number
}

// OpaqueID returns the opaque id. Only meaningful when !IsNumeric.
func (k Key) OpaqueID() string {
	return k.id
}

// Raw returns the original string form, for error messages.
func (k Key) Raw() string {
	if k.numeric {
		return strconv.FormatInt(k.number, 10)
	}
	return k.id
}
