package config

import "fmt"

type InvalidError struct {
	Key   string
	Value any
}

func (e InvalidError) Error() string {
	return fmt.Sprintf("Invalid value ‘%v’ for setting ‘%s’", e.Value, e.Key)
}
