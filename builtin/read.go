package builtin

import (
	"errors"
	"io"
	"strings"
)

// ReadLine returns the next line of input.  A final line missing its newline
// is still returned; io.EOF is only reported once nothing is left.
func (t *Terminal) ReadLine() (string, error) {
	s, err := t.r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && s == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
