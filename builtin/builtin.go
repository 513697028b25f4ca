// Package builtin implements the host collaborators the interpreter talks to:
// the console used for display and input, and the runner used to hand text
// to the operating system.
package builtin

// Console is the interpreter’s terminal.  WriteText writes text exactly as
// given; the caller supplies any line terminator.  ReadLine blocks until a
// line of input is available and returns it without its terminator.
type Console interface {
	WriteText(s string) error
	ReadLine() (string, error)
}

// Runner executes a command line on behalf of a script
type Runner interface {
	Run(text string) error
}
