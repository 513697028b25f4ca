// Package vars holds the PILOT symbol table.  String and numeric variables
// share one name space: the sigil is part of the canonical name, so ‘$A’ and
// ‘#A’ never collide.
package vars

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

type Kind int

const (
	Numeric Kind = iota
	String
)

func (k Kind) String() string {
	if k == String {
		return "string"
	}
	return "numeric"
}

// Var is a single entry in the table.  Only the field matching Kind is
// meaningful.
type Var struct {
	Name string
	Kind Kind
	Str  string
	Num  int
}

func (v Var) Value() any {
	if v.Kind == String {
		return v.Str
	}
	return v.Num
}

// Table is the symbol table.  Entries are kept in insertion order so that
// dumps are reproducible.  In a non-strict table reading an undefined
// variable yields the zero value instead of an error.
type Table struct {
	Strict bool
	vars   *orderedmap.OrderedMap[string, *Var]
}

func New(strict bool) *Table {
	return &Table{
		Strict: strict,
		vars:   orderedmap.NewOrderedMap[string, *Var](),
	}
}

// Canonical returns the name used to key a variable: trimmed and upper-cased
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// KindOf returns the kind implied by a variable name.  Names starting with a
// ‘$’ are strings; everything else is numeric.
func KindOf(name string) Kind {
	if strings.HasPrefix(strings.TrimSpace(name), "$") {
		return String
	}
	return Numeric
}

func (t *Table) SetString(name, val string) error {
	v, err := t.entry(name, String)
	if err != nil {
		return err
	}
	v.Str = val
	return nil
}

func (t *Table) SetNumeric(name string, val int) error {
	v, err := t.entry(name, Numeric)
	if err != nil {
		return err
	}
	v.Num = val
	return nil
}

func (t *Table) String(name string) (string, error) {
	v, err := t.lookup(name, String)
	if v == nil {
		return "", err
	}
	return v.Str, nil
}

func (t *Table) Numeric(name string) (int, error) {
	v, err := t.lookup(name, Numeric)
	if v == nil {
		return 0, err
	}
	return v.Num, nil
}

func (t *Table) Len() int {
	return t.vars.Len()
}

// Each calls fn on every variable in the order they were first assigned
func (t *Table) Each(fn func(v Var)) {
	for el := t.vars.Front(); el != nil; el = el.Next() {
		fn(*el.Value)
	}
}

func (t *Table) entry(name string, k Kind) (*Var, error) {
	c := Canonical(name)
	if KindOf(c) != k {
		return nil, KindError{c, k}
	}
	if v, ok := t.vars.Get(c); ok {
		return v, nil
	}
	v := &Var{Name: c, Kind: k}
	t.vars.Set(c, v)
	return v, nil
}

func (t *Table) lookup(name string, k Kind) (*Var, error) {
	c := Canonical(name)
	v, ok := t.vars.Get(c)
	switch {
	case ok && v.Kind == k:
		return v, nil
	case !t.Strict:
		return nil, nil
	case KindOf(c) != k:
		return nil, KindError{c, k}
	}
	return nil, UndefinedError{c}
}
