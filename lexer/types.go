package lexer

import "unicode"

// IsMathOp reports whether r is one of the arithmetic or bitwise operators
// understood by the evaluator.
func IsMathOp(r rune) bool {
	return r == '+' ||
		r == '-' ||
		r == '*' ||
		r == '/' ||
		r == '%' ||
		r == '^' ||
		r == '&' ||
		r == '|'
}

func IsRelChar(r rune) bool {
	return r == '=' ||
		r == '<' ||
		r == '>'
}

func IsParen(r rune) bool {
	return r == '(' || r == ')'
}

func isDelim(r rune) bool {
	return r == eof ||
		unicode.IsSpace(r) ||
		IsParen(r) ||
		IsMathOp(r) ||
		IsRelChar(r)
}
