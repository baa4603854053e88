package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLineInput(t *testing.T) {
	var out bytes.Buffer
	in := NewBasicLineInput(strings.NewReader("first\r\nsecond\nlast"), &out)

	for _, want := range []string{"first", "second", "last"} {
		got, err := in.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := in.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
	assert.NoError(t, in.Close())
}

func TestNewLineInputNonTerminal(t *testing.T) {
	in, err := newLineInput(strings.NewReader("x\n"), io.Discard, "")
	require.NoError(t, err)
	line, err := in.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "x", line)
}
