package domain

import "strings"

// Identifier is a normalized course number, e.g. "CSCI200".
// Two identifiers are equal iff their normalized forms are equal.
type Identifier string

// Normalize trims surrounding whitespace and upper-cases the result
// e.g. " csci200 " -> "CSCI200"
func Normalize(raw string) Identifier {
	return Identifier(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsEmpty reports whether the identifier has no characters
func (id Identifier) IsEmpty() bool {
	return id == ""
}

func (id Identifier) String() string {
	return string(id)
}
