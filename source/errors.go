package source

import "fmt"

// UnavailableError is returned when a script cannot be opened or read
type UnavailableError struct {
	Name string
	Err  error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("Can’t open file ‘%s’: %s", e.Name, e.Err)
}

func (e UnavailableError) Unwrap() error {
	return e.Err
}
