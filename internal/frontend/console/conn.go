// Package console provides the line-oriented terminal front end: a line
// reader/writer, ANSI styling, room rendering, and the per-player game loop.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Conn is the operator's terminal: lines in, text out.
type Conn struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConn reads operator input from r and writes game output to w.
func NewConn(r io.Reader, w io.Writer) *Conn {
	return &Conn{reader: bufio.NewReader(r), out: w}
}

// ReadLine returns the next line of operator input without its \n, \r\n,
// or lone \r terminator. Control bytes other than tab are dropped. A last
// line with no terminator is returned before io.EOF.
func (c *Conn) ReadLine() (string, error) {
	var line strings.Builder
	sawInput := false
	for {
		b, err := c.reader.ReadByte()
		switch {
		case errors.Is(err, io.EOF) && sawInput:
			return line.String(), nil
		case err != nil:
			return line.String(), err
		}
		sawInput = true

		switch {
		case b == '\n':
			return line.String(), nil
		case b == '\r':
			c.skipLF()
			return line.String(), nil
		case b == '\t' || b >= ' ':
			line.WriteByte(b)
		}
	}
}

// skipLF consumes a \n directly following a \r.
func (c *Conn) skipLF() {
	if next, err := c.reader.Peek(1); err == nil && next[0] == '\n' {
		_, _ = c.reader.ReadByte()
	}
}

// WriteLine writes text and a newline.
func (c *Conn) WriteLine(text string) error {
	_, err := io.WriteString(c.out, text+"\n")
	return err
}

// WritePrompt writes a prompt string without a trailing newline.
func (c *Conn) WritePrompt(prompt string) error {
	_, err := io.WriteString(c.out, prompt)
	return err
}
