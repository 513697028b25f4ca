package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, "$NAME", Canonical("  $name\t"))
	assert.Equal(t, "#SCORE", Canonical("#Score"))
	assert.Equal(t, String, KindOf(" $x"))
	assert.Equal(t, Numeric, KindOf("#x"))
	assert.Equal(t, Numeric, KindOf("count"))
}

func TestSetGet(t *testing.T) {
	tab := New(true)
	require.NoError(t, tab.SetString("$name", "Ada"))
	require.NoError(t, tab.SetNumeric("#age", 36))

	s, err := tab.String("$NAME")
	require.NoError(t, err)
	assert.Equal(t, "Ada", s)

	n, err := tab.Numeric(" #Age ")
	require.NoError(t, err)
	assert.Equal(t, 36, n)
}

func TestUpsertKeepsOneEntry(t *testing.T) {
	tab := New(true)
	require.NoError(t, tab.SetNumeric("#x", 1))
	require.NoError(t, tab.SetNumeric("#X", 2))
	require.NoError(t, tab.SetNumeric(" #x", 3))
	assert.Equal(t, 1, tab.Len())

	n, err := tab.Numeric("#x")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSigilsDoNotCollide(t *testing.T) {
	tab := New(true)
	require.NoError(t, tab.SetString("$a", "text"))
	require.NoError(t, tab.SetNumeric("#a", 7))
	assert.Equal(t, 2, tab.Len())
}

func TestUndefined(t *testing.T) {
	tab := New(true)

	_, err := tab.Numeric("#missing")
	var ue UndefinedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "#MISSING", ue.Name)

	_, err = tab.String("$missing")
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Unknown variable ‘$MISSING’", err.Error())
}

func TestUndefinedLenient(t *testing.T) {
	tab := New(false)

	n, err := tab.Numeric("#missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	s, err := tab.String("$missing")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestKindMismatch(t *testing.T) {
	tab := New(true)

	var ke KindError
	require.ErrorAs(t, tab.SetNumeric("$x", 1), &ke)
	assert.Equal(t, String, KindOf(ke.Name))
	require.ErrorAs(t, tab.SetString("#x", "1"), &ke)

	_, err := tab.Numeric("$x")
	require.ErrorAs(t, err, &ke)
}

func TestEachInsertionOrder(t *testing.T) {
	tab := New(true)
	require.NoError(t, tab.SetNumeric("#z", 1))
	require.NoError(t, tab.SetString("$a", "x"))
	require.NoError(t, tab.SetNumeric("#m", 2))
	require.NoError(t, tab.SetNumeric("#z", 9))

	var names []string
	var values []any
	tab.Each(func(v Var) {
		names = append(names, v.Name)
		values = append(values, v.Value())
	})
	assert.Equal(t, []string{"#Z", "$A", "#M"}, names)
	assert.Equal(t, []any{9, "x", 2}, values)
}
