// Package testutil provides helpers for driving the console front end in tests.
package testutil

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// ConsoleScript feeds scripted operator input to a console session and
// captures everything the session writes.
type ConsoleScript struct {
	in  *strings.Reader
	out bytes.Buffer
	t   *testing.T
}

// NewConsoleScript builds a script from operator lines. Each line is sent
// with a trailing \r\n, as a terminal would.
//
// Postcondition: Returns a script whose Reader yields the lines and then io.EOF.
func NewConsoleScript(t *testing.T, lines ...string) *ConsoleScript {
	t.Helper()
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\r\n")
	}
	return &ConsoleScript{
		in: strings.NewReader(b.String()),
		t:  t,
	}
}

// Reader returns the operator input stream.
func (c *ConsoleScript) Reader() io.Reader { return c.in }

// Writer returns the stream the session writes to.
func (c *ConsoleScript) Writer() io.Writer { return &c.out }

// Output returns everything written so far.
func (c *ConsoleScript) Output() string { return c.out.String() }

// Remaining reports how many unread input bytes are left.
func (c *ConsoleScript) Remaining() int { return c.in.Len() }

// RequireInOrder fails the test unless every substring appears in the
// output, each after the previous one.
//
// Precondition: substrs must be non-empty strings.
func (c *ConsoleScript) RequireInOrder(substrs ...string) {
	c.t.Helper()
	out := c.Output()
	pos := 0
	for _, s := range substrs {
		idx := strings.Index(out[pos:], s)
		if idx < 0 {
			c.t.Fatalf("output missing %q after offset %d:\n%s", s, pos, out)
		}
		pos += idx + len(s)
	}
}

// ErrWriteFailed is returned by FailingWriter.
var ErrWriteFailed = errors.New("write failed")

// FailingWriter is an io.Writer whose writes always fail.
type FailingWriter struct{}

// Write implements io.Writer.
func (FailingWriter) Write([]byte) (int, error) { return 0, ErrWriteFailed }
