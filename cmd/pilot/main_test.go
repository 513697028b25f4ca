package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~mango/pilot/log"
)

func fixture(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(data), 0644))
	}
	return fs
}

func runAndCapture(t *testing.T, fs afero.Fs, input string, args ...string) (int, string, string) {
	t.Helper()
	var out, diag bytes.Buffer
	old := log.Stderr
	log.Stderr = &diag
	defer func() { log.Stderr = old }()

	argv := append([]string{"pilot", "-c", "/pilot.yaml"}, args...)
	code := run(argv, fs, strings.NewReader(input), &out)
	return code, out.String(), diag.String()
}

func TestRunScript(t *testing.T) {
	fs := fixture(t, map[string]string{
		"/quiz.p": "T: What is your name?\nA: $name\nT: Hi $name\nE:\nT: unreachable\n",
	})

	// The extension is optional
	code, out, diag := runAndCapture(t, fs, "Ada\n", "/quiz")
	assert.Equal(t, 0, code)
	assert.Equal(t, "What is your name?\n> Hi Ada\n", out)
	assert.Equal(t, "", diag)
}

func TestRunFatal(t *testing.T) {
	fs := fixture(t, map[string]string{
		"/bad.p": "T: ok\nJ: *missing\n",
	})
	code, out, diag := runAndCapture(t, fs, "", "/bad.p")
	assert.Equal(t, exitBadLabel, code)
	assert.Equal(t, "ok\n", out)
	assert.Equal(t, "pilot(2): Fatal Error - Unknown label ‘MISSING’\n", diag)
}

func TestRunMissingFile(t *testing.T) {
	code, _, diag := runAndCapture(t, afero.NewMemMapFs(), "", "/nope")
	assert.Equal(t, exitNoFile, code)
	assert.True(t, strings.HasPrefix(diag, "pilot(0): Fatal Error - Can’t open file ‘/nope.p’"), diag)
}

func TestRunLenientFlag(t *testing.T) {
	fs := fixture(t, map[string]string{"/x.p": "T: [#x]\n"})

	code, _, _ := runAndCapture(t, fs, "", "/x.p")
	assert.Equal(t, exitUndefined, code)

	code, out, _ := runAndCapture(t, fs, "", "-k", "/x.p")
	assert.Equal(t, 0, code)
	assert.Equal(t, "[0\n", out)
}

func TestRunConfigFile(t *testing.T) {
	deep := "A: $a\nC: #n = 0\nU: sub\nE:\n" +
		"*sub\nC: #n = #n + 1\nU(#n < 3): sub\nE:\n"
	fs := fixture(t, map[string]string{
		"/pilot.yaml": "prompt: \"? \"\nmax_depth: 1\noverflow: error\n",
		"/deep.p":     deep,
	})
	code, out, diag := runAndCapture(t, fs, "x\n", "/deep.p")
	assert.Equal(t, exitTooDeep, code)
	assert.Equal(t, "? ", out)
	assert.Equal(t, "pilot(7): Fatal Error - Subroutine calls nested deeper than 1\n", diag)

	// Flags win over the file
	code, _, diag = runAndCapture(t, fs, "x\n", "-d", "5", "/deep.p")
	assert.Equal(t, 0, code, diag)
	code, _, diag = runAndCapture(t, fs, "x\n", "-o", "drop", "/deep.p")
	assert.Equal(t, 0, code, diag)
}

func TestRunUsage(t *testing.T) {
	code, out, _ := runAndCapture(t, afero.NewMemMapFs(), "", "-h")
	assert.Equal(t, 0, code)
	assert.Equal(t, usage+"\n", out)

	code, _, diag := runAndCapture(t, afero.NewMemMapFs(), "")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, usage+"\n", diag)

	code, _, diag = runAndCapture(t, afero.NewMemMapFs(), "", "-d", "many", "/x.p")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, diag, "max_depth")

	code, _, _ = runAndCapture(t, afero.NewMemMapFs(), "", "-o", "wrap", "/x.p")
	assert.Equal(t, exitFailure, code)
}

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		script string
		want   int
	}{
		{"T: fine\n", 0},
		{"*a\n*A\n", exitDupLabel},
		{"C: $s = x\nG: $s 1 2\n", exitKindMismatch},
		{"C: #x = 1 2 3\n", exitMathSymbol},
		{"T(#x): what\n", exitNoRelation},
		{"C: #x = 4 / 0\n", exitDivideByZero},
		{"C: #x\n", exitNoAssignment},
		{"A: $x\nX: $x\n", exitTooDeep},
	}
	for _, tt := range tests {
		fs := fixture(t, map[string]string{"/s.p": tt.script})
		code, _, diag := runAndCapture(t, fs, "X: $x\n", "/s.p")
		assert.Equal(t, tt.want, code, "%q: %s", tt.script, diag)
	}
}
