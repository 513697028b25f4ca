package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"git.sr.ht/~mango/pilot/ast"
	"git.sr.ht/~mango/pilot/lexer"
)

// ParseLine classifies a single source line.  A command line has the form
// ‘C(guard): args’.  The guard is the text inside the first parenthesised
// group before the first colon; without parentheses it is all the text
// between the command letter and the colon, as in ‘TY:’.  A line without a
// colon has neither a guard nor arguments.
func ParseLine(line string) ast.Statement {
	text := strings.TrimLeftFunc(line, unicode.IsSpace)
	if text == "" {
		return ast.Statement{Kind: ast.StmtBlank}
	}

	r, w := utf8.DecodeRuneInString(text)
	switch r {
	case '*':
		return ast.Statement{Kind: ast.StmtLabel, Text: text}
	case '#':
		return ast.Statement{Kind: ast.StmtComment, Text: text}
	case ':':
		return ast.Statement{
			Kind: ast.StmtContinuation,
			Args: text[w:],
			Text: text,
		}
	}

	cmd, ok := ast.LookupCommand(r)
	if !ok {
		return ast.Statement{Kind: ast.StmtUnknown, Text: text}
	}

	stmt := ast.Statement{Kind: ast.StmtCommand, Cmd: cmd, Text: text}
	body := text[w:]
	if i := strings.IndexByte(body, ':'); i != -1 {
		stmt.Guard = guardText(body[:i])
		stmt.Args = body[i+1:]
	}
	return stmt
}

// guardText returns the contents of the first parenthesised group in s, or
// all of s if there is none.  An unclosed group runs to the end of s.
func guardText(s string) string {
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return strings.TrimSpace(s)
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				return strings.TrimSpace(s[open+1 : i])
			}
		}
	}
	return strings.TrimSpace(s[open+1:])
}

// ParseGuard parses the text of a guard.  Parentheses carry no meaning and are
// ignored; the first relational operator splits the guard into its two sides.
func ParseGuard(g string) (ast.Guard, error) {
	switch strings.ToUpper(strings.Trim(g, "() \t")) {
	case "Y":
		return ast.Guard{Kind: ast.GuardYes}, nil
	case "N":
		return ast.Guard{Kind: ast.GuardNo}, nil
	}

	p := newParser(g)
	defer p.drain()

	for {
		switch t := p.next(); t.Kind {
		case lexer.TokEof:
			return ast.Guard{}, MissingRelationalOperatorError{g}
		case lexer.TokRel:
			op, ok := ast.LookupRelOp(t.Val)
			if !ok {
				return ast.Guard{}, MissingRelationalOperatorError{g}
			}
			return ast.Guard{
				Kind:  ast.GuardRelation,
				Left:  g[:t.Pos],
				Op:    op,
				Right: g[t.Pos+len(t.Val):],
			}, nil
		}
	}
}
