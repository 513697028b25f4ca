// Package source provides the seekable line source a PILOT program is read
// from.  Offsets are line indices, so a saved offset always lands on the
// start of a line.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Source is a line-oriented, randomly seekable program text
type Source interface {
	// ReadLine returns the next line without its terminator.  At the end of
	// the source it returns io.EOF.
	ReadLine() (string, error)
	// Offset is the position of the next line to be read
	Offset() int64
	Seek(off int64) error
	AtEnd() bool
	// Line is the 1-based number of the line most recently read, or 0
	Line() int
}

// Lines is a Source backed by an in-memory slice of lines
type Lines struct {
	Name  string
	lines []string
	pos   int
}

func NewLines(name string, lines []string) *Lines {
	return &Lines{Name: name, lines: lines}
}

// Read splits r into lines, accepting both LF and CRLF terminators
func Read(name string, r io.Reader) (*Lines, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, UnavailableError{name, errors.Wrap(err, "failed to read")}
	}
	return NewLines(name, lines), nil
}

// Open reads the named script from fs.  If name does not exist and ext is not
// empty, name+ext is tried as well.
func Open(fs afero.Fs, name, ext string) (*Lines, error) {
	f, err := fs.Open(name)
	if errors.Is(err, os.ErrNotExist) && ext != "" && !strings.HasSuffix(name, ext) {
		name += ext
		f, err = fs.Open(name)
	}
	if err != nil {
		return nil, UnavailableError{name, errors.Wrap(err, "failed to open")}
	}
	defer f.Close()

	return Read(name, f)
}

func (l *Lines) ReadLine() (string, error) {
	if l.AtEnd() {
		return "", io.EOF
	}
	s := l.lines[l.pos]
	l.pos++
	return s, nil
}

func (l *Lines) Offset() int64 {
	return int64(l.pos)
}

func (l *Lines) Seek(off int64) error {
	n, err := safecast.ToInt(off)
	if err != nil || n < 0 || n > len(l.lines) {
		return errors.Errorf("offset %d is outside of %s", off, l.Name)
	}
	l.pos = n
	return nil
}

func (l *Lines) AtEnd() bool {
	return l.pos >= len(l.lines)
}

func (l *Lines) Line() int {
	return l.pos
}

func (l *Lines) Len() int {
	return len(l.lines)
}
