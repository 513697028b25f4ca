package lexer

import "fmt"

type TokenType int

const (
	TokEof  TokenType = iota // End of input
	TokWord                  // A literal or variable reference
	TokOp                    // An arithmetic or bitwise operator
	TokRel                   // A relational operator
)

type Token struct {
	Kind TokenType
	Val  string
	Pos  int // Byte offset of the token in the input
}

// Maximum length of a word before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokEof:
		return "end of expression"
	case TokWord:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘%.*s…’", maxStrLen, t.Val)
		}
		return "‘" + t.Val + "’"
	case TokOp, TokRel:
		return "‘" + t.Val + "’"
	}

	panic("unreachable")
}
