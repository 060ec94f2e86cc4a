package client

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeInput(t *testing.T, input string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = io.WriteString(w, input)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return r
}

func TestTerminalPrompter_PipedInput(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(pipeInput(t, "Secret1\r\nsome text\nlast"), &out)

	password, err := p.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "Secret1", password)

	line, err := p.ReadLine("Content: ")
	require.NoError(t, err)
	assert.Equal(t, "some text", line)

	line, err = p.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = p.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Password: Content: ", out.String())
}
