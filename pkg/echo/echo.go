// Package echo joins its words with single spaces and prints them.
package echo

import (
	"errors"
	"io"
	"strings"

	"textutils/pkg/textio"
)

// ErrNoText is returned when there are no words to print.
var ErrNoText = errors.New("at least one word of text is required")

// Config holds the options for one echo invocation.
type Config struct {
	Text        []string // Words to print, joined with a single space
	OmitNewline bool     // Suppress the trailing newline
}

// Validate reports whether cfg can be run.
func (cfg Config) Validate() error {
	if len(cfg.Text) == 0 {
		return textio.NewError(textio.ParseError, "", "", ErrNoText)
	}
	return nil
}

// Run writes the joined text to w.
func Run(cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := strings.Join(cfg.Text, " ")
	if !cfg.OmitNewline {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return textio.NewError(textio.IOError, "", "", err)
	}
	return nil
}
