// Package console runs the guessing game over a line-oriented terminal.
//
// The game session talks to the player only through LineIO, so the whole
// interaction can be scripted in tests.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineIO reads and writes whole lines of text.
type LineIO interface {
	// ReadLine blocks until a line is available. It returns io.EOF once the
	// input is exhausted.
	ReadLine() (string, error)
	WriteLine(text string) error
}

// Terminal is a LineIO over a reader and a writer, typically stdin/stdout.
// Lines of any length are returned whole.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal wraps r and w.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: w}
}

// ReadLine returns the next line without its terminator.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
		// final line without a terminator
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine writes text followed by a newline.
func (t *Terminal) WriteLine(text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}
