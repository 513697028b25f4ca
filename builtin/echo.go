package builtin

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// Terminal is a Console reading from and writing to plain streams
type Terminal struct {
	r *bufio.Reader
	w io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{bufio.NewReader(in), out}
}

func (t *Terminal) WriteText(s string) error {
	_, err := io.WriteString(t.w, s)
	// A closed pipe on the other end is not our problem
	if err != nil && !errors.Is(err, syscall.EPIPE) {
		return err
	}
	return nil
}
