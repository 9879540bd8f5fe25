package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReadLine_LineEndings(t *testing.T) {
	c := NewConn(strings.NewReader("north\r\nsouth\neast\rwest"), io.Discard)

	for _, want := range []string{"north", "south", "east", "west"} {
		line, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EmptyLines(t *testing.T) {
	c := NewConn(strings.NewReader("\n\r\n"), io.Discard)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)
	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)
	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_FiltersControlCharacters(t *testing.T) {
	c := NewConn(strings.NewReader("ta\x00ke\x07\tco\x1bin\n"), io.Discard)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "take\tcoin", line)
}

func TestReadLine_UTF8(t *testing.T) {
	c := NewConn(strings.NewReader("拿取 生锈的钥匙\n"), io.Discard)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "拿取 生锈的钥匙", line)
}

func TestReadLine_EmptyInput(t *testing.T) {
	c := NewConn(strings.NewReader(""), io.Discard)
	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteLineAndPrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConn(strings.NewReader(""), &out)
	require.NoError(t, c.WriteLine("== hall =="))
	require.NoError(t, c.WritePrompt("> "))
	assert.Equal(t, "== hall ==\n> ", out.String())
}

// Property: any printable line survives a round trip through ReadLine.
func TestPropertyReadLinePrintableRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.StringMatching(`[ -~北南东西上下]{0,30}`)).Draw(t, "lines")
		var b strings.Builder
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
		c := NewConn(strings.NewReader(b.String()), io.Discard)
		for _, want := range lines {
			got, err := c.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		_, err := c.ReadLine()
		assert.ErrorIs(t, err, io.EOF)
	})
}
