// Package log writes the interpreter’s diagnostics and builds its trace
// logger.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr is where diagnostics are written
var Stderr io.Writer = os.Stderr

// Err prints a diagnostic that is not tied to a script line.  It prepends the
// program name and appends a newline, much like warnx(3) from C.
func Err(format string, args ...any) {
	fmt.Fprintf(Stderr, "pilot: "+format+"\n", args...)
}

// Report prints a diagnostic for an error raised while running line of a
// script:
//
//	pilot(12): Fatal Error - Unknown label ‘MENU’
//	pilot(3): Error - Unknown command ‘Q’
func Report(line int, fatal bool, err error) {
	kind := "Error"
	if fatal {
		kind = "Fatal Error"
	}
	fmt.Fprintf(Stderr, "pilot(%d): %s - %s\n", line, kind, err)
}

// NewLogger returns a development style console logger writing to w at the
// given level (‘debug’, ‘info’, ‘warn’, or ‘error’).
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	al := zap.NewAtomicLevelAt(lvl)
	ec := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(zapcore.AddSync(w)), al)
	return zap.New(core), nil
}
