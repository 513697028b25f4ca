// Package ast describes a single classified line of a PILOT program.  PILOT
// is interpreted a line at a time, so there is no tree to speak of: a
// Statement is the whole of what the parser produces.
package ast

// StmtKind says how a source line is to be treated by the dispatcher
type StmtKind int

const (
	StmtBlank        StmtKind = iota // Nothing but whitespace
	StmtLabel                        // ‘*name’, consumed by the label scan
	StmtComment                      // ‘#’ comment or shebang line
	StmtCommand                      // A command letter followed by its body
	StmtContinuation                 // ‘:’ reusing the previous command letter
	StmtUnknown                      // Anything else
)

// Statement is a classified source line
type Statement struct {
	Kind  StmtKind
	Cmd   Command // Only set for StmtCommand
	Guard string  // Text of the first parenthesised group before the colon
	Args  string  // Everything after the first colon
	Text  string  // The line with leading whitespace removed
}

// Guarded reports whether the statement carries a non-empty guard
func (s Statement) Guarded() bool {
	return s.Guard != ""
}

// GuardKind distinguishes the two guard forms
type GuardKind int

const (
	GuardRelation GuardKind = iota // ‘left relop right’
	GuardYes                       // ‘Y’: the last match succeeded
	GuardNo                        // ‘N’: the last match failed
)

// Guard is a parsed conditional expression gating a command
type Guard struct {
	Kind  GuardKind
	Left  string
	Op    RelOp
	Right string
}

type RelOp int

const (
	RelEq RelOp = iota // =
	RelNe              // <>
	RelLt              // <
	RelGt              // >
	RelLe              // <=
	RelGe              // >=
)

var relOps = map[string]RelOp{
	"=":  RelEq,
	"<>": RelNe,
	"<":  RelLt,
	">":  RelGt,
	"<=": RelLe,
	">=": RelGe,
}

func LookupRelOp(s string) (RelOp, bool) {
	op, ok := relOps[s]
	return op, ok
}

func (op RelOp) String() string {
	for k, v := range relOps {
		if v == op {
			return k
		}
	}
	panic("unreachable")
}

// Holds reports whether l op r is true
func (op RelOp) Holds(l, r int) bool {
	switch op {
	case RelEq:
		return l == r
	case RelNe:
		return l != r
	case RelLt:
		return l < r
	case RelGt:
		return l > r
	case RelLe:
		return l <= r
	case RelGe:
		return l >= r
	}
	panic("unreachable")
}
