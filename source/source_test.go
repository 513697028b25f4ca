package source

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	src, err := Read("test", strings.NewReader("T: one\r\nT: two\n\nT: four"))
	require.NoError(t, err)
	require.Equal(t, 4, src.Len())

	var got []string
	for !src.AtEnd() {
		s, err := src.ReadLine()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"T: one", "T: two", "", "T: four"}, got)
	assert.Equal(t, 4, src.Line())

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSeek(t *testing.T) {
	src := NewLines("test", []string{"a", "b", "c"})
	_, _ = src.ReadLine()
	_, _ = src.ReadLine()
	assert.EqualValues(t, 2, src.Offset())
	assert.Equal(t, 2, src.Line())

	require.NoError(t, src.Seek(0))
	s, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	require.NoError(t, src.Seek(3))
	assert.True(t, src.AtEnd())

	assert.Error(t, src.Seek(4))
	assert.Error(t, src.Seek(-1))
}

func TestOpenFallsBackToExtension(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "hello.p", []byte("T: hi\n"), 0o644))

	src, err := Open(fs, "hello", ".p")
	require.NoError(t, err)
	assert.Equal(t, "hello.p", src.Name)
	assert.Equal(t, 1, src.Len())

	src, err = Open(fs, "hello.p", ".p")
	require.NoError(t, err)
	assert.Equal(t, "hello.p", src.Name)
}

func TestOpenMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Open(fs, "figment", ".p")
	var ue UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "figment.p", ue.Name)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
