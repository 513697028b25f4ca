// Package stringsx has the string helpers PILOT needs beyond package strings.
package stringsx

import "strings"

// isBlank reports whether r separates substrings.  Newlines never reach the
// interpreter, so only spaces and tabs count.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Fields splits s into its blank-separated substrings
func Fields(s string) []string {
	return strings.FieldsFunc(s, isBlank)
}

// Nth returns the n’th (1-based) blank-separated substring of s, or the empty
// string if s has fewer than n substrings.
func Nth(s string, n int) string {
	xs := Fields(s)
	if n < 1 || n > len(xs) {
		return ""
	}
	return xs[n-1]
}
