// Package expr evaluates PILOT arithmetic and conditional expressions.
//
// Arithmetic has no operator precedence: operators are applied strictly from
// left to right, so 2+3*4 is 20.  Parentheses are discarded by the lexer and
// have no effect on grouping.
package expr

import (
	"math"
	"strings"

	"git.sr.ht/~mango/pilot/ast"
	"git.sr.ht/~mango/pilot/lexer"
	"git.sr.ht/~mango/pilot/pkg/stringsx"
)

// Lookup resolves numeric variables
type Lookup interface {
	Numeric(name string) (int, error)
}

// MatchedVar holds 1 if the last match succeeded and 0 otherwise
const MatchedVar = "#MATCHED"

// Eval computes the value of the arithmetic expression s
func Eval(s string, vars Lookup) (int, error) {
	fs := stringsx.Fields(lexer.Explode(s))
	if len(fs) == 0 {
		return 0, nil
	}

	acc, err := value(fs[0], vars)
	if err != nil {
		return 0, err
	}

	// A trailing operator without an operand is ignored
	for i := 1; i+1 < len(fs); i += 2 {
		op, rhs := fs[i], fs[i+1]
		n, err := value(rhs, vars)
		if err != nil {
			return 0, err
		}
		if acc, err = apply(acc, op, n); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// Test reports whether the guard g holds
func Test(g ast.Guard, vars Lookup) (bool, error) {
	switch g.Kind {
	case ast.GuardYes, ast.GuardNo:
		m, err := vars.Numeric(MatchedVar)
		if err != nil {
			return false, err
		}
		return (m == 1) == (g.Kind == ast.GuardYes), nil
	}

	l, err := Eval(g.Left, vars)
	if err != nil {
		return false, err
	}
	r, err := Eval(g.Right, vars)
	if err != nil {
		return false, err
	}
	return g.Op.Holds(l, r), nil
}

// value resolves a single operand: a ‘#’ variable or an integer literal
func value(s string, vars Lookup) (int, error) {
	if strings.HasPrefix(s, "#") {
		return vars.Numeric(s)
	}
	return Atoi(s), nil
}

func apply(acc int, op string, n int) (int, error) {
	switch op {
	case "+":
		return acc + n, nil
	case "-":
		return acc - n, nil
	case "*":
		return acc * n, nil
	case "/", "%":
		if n == 0 {
			return 0, DivisionByZeroError{op}
		}
		if op == "/" {
			return acc / n, nil
		}
		return acc % n, nil
	case "&":
		return acc & n, nil
	case "|":
		return acc | n, nil
	case "^":
		return acc ^ n, nil
	}
	return 0, ExpectedMathSymbolError{op}
}

// Atoi converts the leading integer in s, in the manner of C’s atoi(3):
// leading whitespace and a sign are accepted, conversion stops at the first
// non-digit, and a string with no digits is 0.  Values out of range saturate
// at math.MaxInt or math.MinInt.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	// Accumulate negatively since |math.MinInt| > math.MaxInt
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n < (math.MinInt+d)/10 {
			n = math.MinInt
			break
		}
		n = n*10 - d
	}
	switch {
	case !neg && n == math.MinInt:
		return math.MaxInt
	case !neg:
		return -n
	}
	return n
}
