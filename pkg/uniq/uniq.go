// Package uniq collapses runs of identical adjacent lines.
package uniq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"textutils/pkg/textio"

	"go.uber.org/zap"
)

const toolName = "uniqr"

// Config holds the options for one uniq invocation.
type Config struct {
	Input  string // Input name; "-" is standard input
	Output string // Output path; empty writes to standard output
	Count  bool   // Prefix each line with its run length
}

// Collapser accumulates one run of identical lines at a time and writes each
// finished run to its writer.
type Collapser struct {
	w       io.Writer
	count   bool
	content string // line of the open run, terminator removed
	term    string // terminator of the most recent line in the run
	run     int    // zero while no run is open
	flushed int
}

// NewCollapser returns a Collapser writing to w.
func NewCollapser(w io.Writer, count bool) *Collapser {
	return &Collapser{w: w, count: count}
}

// Add feeds one line, including its terminator if it has one.
// Lines compare by exact content with the trailing newline removed.
func (c *Collapser) Add(line string) error {
	content, term := splitTerminator(line)
	if c.run > 0 && content == c.content {
		c.run++
		c.term = term
		return nil
	}
	if err := c.Flush(); err != nil {
		return err
	}
	c.content, c.term, c.run = content, term, 1
	return nil
}

// Flush writes the open run, if any, and closes it.
func (c *Collapser) Flush() error {
	if c.run == 0 {
		return nil
	}
	var err error
	if c.count {
		_, err = fmt.Fprintf(c.w, "%4d %s%s", c.run, c.content, c.term)
	} else {
		_, err = fmt.Fprintf(c.w, "%s%s", c.content, c.term)
	}
	c.run = 0
	c.flushed++
	return err
}

// Runs returns how many runs have been written so far.
func (c *Collapser) Runs() int {
	return c.flushed
}

func splitTerminator(line string) (string, string) {
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// Collapse reads r to the end and writes one line per run to w.
func Collapse(w io.Writer, r io.Reader, count bool) (int, error) {
	c := NewCollapser(w, count)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if addErr := c.Add(line); addErr != nil {
				return c.Runs(), addErr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return c.Runs(), err
		}
	}
	if err := c.Flush(); err != nil {
		return c.Runs(), err
	}
	return c.Runs(), nil
}

// Run collapses cfg.Input into cfg.Output or stdout.
// Failing to open the input or create the output is fatal.
func Run(cfg Config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	input := cfg.Input
	if input == "" {
		input = textio.Stdin
	}

	return textio.WithInput(toolName, input, stdin, logger, func(r io.Reader) error {
		return textio.WithOutput(toolName, cfg.Output, stdout, logger, func(w io.Writer) error {
			runs, err := Collapse(w, r, cfg.Count)
			if err != nil {
				return textio.NewError(textio.IOError, toolName, input, err)
			}
			logger.Debug("Collapsed input", zap.String("file", input), zap.Int("runs", runs))
			return nil
		})
	})
}
