// Package core holds the framework-agnostic catalog naming rules.
package core

import (
	"unicode"
	"unicode/utf8"
)

// NormalizeName uppercases the first character of a name and leaves the
// remainder untouched. Empty input passes through unchanged.
func NormalizeName(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
