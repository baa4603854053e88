package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, Streams{In: strings.NewReader(input), Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func TestRunAddSaveQuit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.list")

	code, stdout, _ := run(t, "n\nhello\ns\nq\n", "-file", p)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, " 1: [ ] >> hello")

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, " :hello\n", string(b))
}

func TestRunJSONFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.json")

	code, _, _ := run(t, "n\nhello\nc\n1\ns\nq\n", "-file", p)
	require.Equal(t, 0, code)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"completed": true`)
}

func TestRunWarnsAboutMalformedLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.list")
	require.NoError(t, os.WriteFile(p, []byte("X:a\ngarbage\n"), 0o644))

	code, stdout, stderr := run(t, "q\n", "-file", p)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, " 1: [X] >> a")
	assert.Contains(t, stderr, "skipping malformed line")
}

func TestRunExitCodes(t *testing.T) {
	code, _, stderr := run(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage:")

	code, _, stderr = run(t, "", "-theme", "plaid")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "theme")

	// a directory cannot be read as a list
	code, _, stderr = run(t, "q\n", "-file", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "load")
}
