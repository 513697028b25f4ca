package label

import "fmt"

type DuplicateError struct {
	Name string
	Line int // Line of the second definition, 0 if unknown
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("Duplicate label ‘%s’", e.Name)
}

type BadLabelError struct {
	Name string
}

func (e BadLabelError) Error() string {
	return fmt.Sprintf("Unknown label ‘%s’", e.Name)
}
