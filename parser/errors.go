package parser

import "fmt"

// MissingRelationalOperatorError is returned for a guard that is neither ‘Y’,
// ‘N’, nor a comparison.
type MissingRelationalOperatorError struct {
	Guard string
}

func (e MissingRelationalOperatorError) Error() string {
	return fmt.Sprintf("Missing relational operator in ‘%s’", e.Guard)
}
