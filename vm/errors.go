package vm

import (
	"errors"
	"fmt"
)

// errEnd stops the dispatch loop without it being an error
var errEnd = errors.New("end of program")

// Error is a fatal error raised on a given line of a program
type Error struct {
	Line int
	Err  error
}

func (e Error) Error() string {
	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

type UnknownCommandError struct {
	Text string
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command ‘%s’", e.Text)
}

// MissingAssignmentError is returned for a ‘C:’ or ‘G:’ with no variable to
// assign to
type MissingAssignmentError struct {
	Args string
}

func (e MissingAssignmentError) Error() string {
	return fmt.Sprintf("Missing assignment in ‘%s’", e.Args)
}

type StackOverflowError struct {
	Depth int
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("Subroutine calls nested deeper than %d", e.Depth)
}

type NestingError struct {
	Depth int
}

func (e NestingError) Error() string {
	return fmt.Sprintf("‘X:’ commands nested deeper than %d", e.Depth)
}

// RunError wraps a failure of the runner used by ‘S:’
type RunError struct {
	Err error
}

func (e RunError) Error() string {
	return e.Err.Error()
}

func (e RunError) Unwrap() error {
	return e.Err
}

// recoverable is implemented by errors after which the program continues
type recoverable interface {
	isRecoverable()
}

func (_ UnknownCommandError) isRecoverable() {}
func (_ RunError) isRecoverable()            {}

// Fatal reports whether err must stop the program
func Fatal(err error) bool {
	var r recoverable
	return !errors.As(err, &r)
}
