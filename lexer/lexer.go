// Package lexer splits PILOT expressions into operands and operators.  The
// lexer runs as a state machine in its own goroutine and hands tokens to the
// consumer over a channel; the channel is closed after TokEof is sent.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input string     // The input string to lex
	start int        // The start of the current token in input
	pos   int        // The pos of the cursor in input
	width int        // Width of the last rune lexed
	Out   chan Token // Token output channel
}

func New(input string) *lexer {
	return &lexer{
		input: input,
		Out:   make(chan Token),
	}
}

func (l *lexer) Run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

func (l *lexer) emit(t TokenType) {
	l.Out <- Token{t, l.input[l.start:l.pos], l.start}
	l.start = l.pos
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

// Tokens lexes s to completion and returns every token up to but excluding
// TokEof.
func Tokens(s string) []Token {
	l := New(s)
	go l.Run()

	xs := []Token{}
	for t := range l.Out {
		if t.Kind != TokEof {
			xs = append(xs, t)
		}
	}
	return xs
}

// Explode renders s as a stream of tokens each followed by a single space.
// Parentheses are dropped, so "(1+2)*3" explodes to "1 + 2 * 3 ".
func Explode(s string) string {
	var sb strings.Builder
	for _, t := range Tokens(s) {
		sb.WriteString(t.Val)
		sb.WriteByte(' ')
	}
	return sb.String()
}
