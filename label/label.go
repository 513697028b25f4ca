// Package label builds the label index of a PILOT program.  Every label is
// found in a single pass before execution starts, which is what makes forward
// jumps possible.
package label

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/elliotchance/orderedmap/v2"

	"git.sr.ht/~mango/pilot/source"
)

// Marker introduces a label definition
const Marker = '*'

// Table maps canonical label names to the offset of the line following the
// label definition
type Table struct {
	offs *orderedmap.OrderedMap[string, int64]
}

func New() *Table {
	return &Table{orderedmap.NewOrderedMap[string, int64]()}
}

// Canonical returns the key a label is stored under: the name without its
// marker, trimmed and upper-cased
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, string(Marker))
	return strings.ToUpper(strings.TrimSpace(name))
}

// Scan reads src from the beginning and records every label.  The position of
// src is restored afterwards.
func Scan(src source.Source) (*Table, error) {
	t := New()
	saved := src.Offset()
	if err := src.Seek(0); err != nil {
		return nil, err
	}

	for {
		s, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if len(s) == 0 || s[0] != Marker {
			continue
		}
		if err := t.Add(s, src.Offset()); err != nil {
			return nil, DuplicateError{Canonical(s), src.Line()}
		}
	}

	if err := src.Seek(saved); err != nil {
		return nil, err
	}
	return t, nil
}

// Add binds name to off.  Binding a name twice is an error.
func (t *Table) Add(name string, off int64) error {
	c := Canonical(name)
	if _, ok := t.offs.Get(c); ok {
		return DuplicateError{Name: c}
	}
	t.offs.Set(c, off)
	return nil
}

// Resolve returns the offset of the named label.  A leading marker on name is
// permitted, so both ‘menu’ and ‘*menu’ resolve.
func (t *Table) Resolve(name string) (int64, error) {
	c := Canonical(name)
	if off, ok := t.offs.Get(c); ok {
		return off, nil
	}
	return 0, BadLabelError{c}
}

func (t *Table) Len() int {
	return t.offs.Len()
}

// Each calls fn for every label in definition order
func (t *Table) Each(fn func(name string, off int64)) {
	for el := t.offs.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}
