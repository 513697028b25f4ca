package builtin

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// System is a Runner backed by real processes.  When Shell is set the text
// is given to it with ‘-c’, otherwise the text is split into words the way a
// shell would and the first word is executed directly.
type System struct {
	Shell          string
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// ExitError reports a command which ran but did not succeed
type ExitError struct {
	Cmd  string
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("Command ‘%s’ exited with status %d", e.Cmd, e.Code)
}

func (s System) Run(text string) error {
	var c *exec.Cmd
	if s.Shell != "" {
		c = exec.Command(s.Shell, "-c", text)
	} else {
		args, err := shlex.Split(text)
		if err != nil {
			return errors.Wrapf(err, "failed to split ‘%s’", text)
		}
		// You might try to run the empty string
		if len(args) == 0 {
			return nil
		}
		c = exec.Command(args[0], args[1:]...)
	}
	c.Stdin, c.Stdout, c.Stderr = s.Stdin, s.Stdout, s.Stderr

	switch err := c.Run(); err.(type) {
	case nil:
		return nil
	case *exec.ExitError:
		return ExitError{text, err.(*exec.ExitError).ExitCode()}
	default:
		return errors.Wrapf(err, "failed to run ‘%s’", text)
	}
}
