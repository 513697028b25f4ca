package expr

import "fmt"

// ExpectedMathSymbolError is returned when an operand appears where an
// operator was expected
type ExpectedMathSymbolError struct {
	Token string
}

func (e ExpectedMathSymbolError) Error() string {
	return fmt.Sprintf("Expected math symbol, not ‘%s’", e.Token)
}

type DivisionByZeroError struct {
	Op string
}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("Division by zero in ‘%s’", e.Op)
}
