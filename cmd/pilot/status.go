package main

import (
	"github.com/pkg/errors"

	"git.sr.ht/~mango/pilot/expr"
	"git.sr.ht/~mango/pilot/label"
	"git.sr.ht/~mango/pilot/parser"
	"git.sr.ht/~mango/pilot/source"
	"git.sr.ht/~mango/pilot/vm"
	"git.sr.ht/~mango/pilot/vm/vars"
)

// Exit statuses, one per kind of fatal error so that a calling script can tell
// them apart.  3 and 4 are unused; they once meant an unknown command and
// running out of memory, neither of which is fatal any more.
const (
	exitFailure      = 1 // Usage, configuration, and anything unlisted
	exitNoFile       = 2
	exitKindMismatch = 5
	exitUndefined    = 6
	exitMathSymbol   = 7
	exitNoRelation   = 8
	exitDupLabel     = 9
	exitBadLabel     = 10
	exitDivideByZero = 11
	exitTooDeep      = 12
	exitNoAssignment = 13
)

// exitStatus maps a fatal error to the status the process exits with
func exitStatus(err error) int {
	switch {
	case errors.As(err, new(source.UnavailableError)):
		return exitNoFile
	case errors.As(err, new(vars.KindError)):
		return exitKindMismatch
	case errors.As(err, new(vars.UndefinedError)):
		return exitUndefined
	case errors.As(err, new(expr.ExpectedMathSymbolError)):
		return exitMathSymbol
	case errors.As(err, new(parser.MissingRelationalOperatorError)):
		return exitNoRelation
	case errors.As(err, new(label.DuplicateError)):
		return exitDupLabel
	case errors.As(err, new(label.BadLabelError)):
		return exitBadLabel
	case errors.As(err, new(expr.DivisionByZeroError)):
		return exitDivideByZero
	case errors.As(err, new(vm.StackOverflowError)),
		errors.As(err, new(vm.NestingError)):
		return exitTooDeep
	case errors.As(err, new(vm.MissingAssignmentError)):
		return exitNoAssignment
	}
	return exitFailure
}
