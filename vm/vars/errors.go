package vars

import "fmt"

// UndefinedError is returned when reading a variable that was never assigned
type UndefinedError struct {
	Name string
}

func (e UndefinedError) Error() string {
	return fmt.Sprintf("Unknown variable ‘%s’", e.Name)
}

// KindError is returned when a variable is used as the wrong kind, such as
// storing a number in ‘$NAME’.
type KindError struct {
	Name string
	Want Kind
}

func (e KindError) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is not a %s variable", e.Name, e.Want)
}
