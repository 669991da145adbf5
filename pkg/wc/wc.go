// Package wc counts lines, words, bytes, and characters.
package wc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"textutils/pkg/textio"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const toolName = "wcr"

type (
	// Config holds the options for one wc invocation.
	Config struct {
		Files []string // Input names; "-" is standard input
		Lines bool     // Show the line count
		Words bool     // Show the word count
		Bytes bool     // Show the byte count
		Chars bool     // Show the character count
	}

	// Counts holds the four tallies of one input.
	Counts struct {
		Lines int64
		Words int64
		Bytes int64
		Chars int64
	}

	// Tally accumulates per-file counts and their running total.
	Tally struct {
		Rows  []Row
		Total Counts
	}

	// Row is the counts of one named input.
	Row struct {
		Name   string
		Counts Counts
	}
)

// Add returns the field-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Lines: c.Lines + o.Lines,
		Words: c.Words + o.Words,
		Bytes: c.Bytes + o.Bytes,
		Chars: c.Chars + o.Chars,
	}
}

// Record appends a row and folds it into the total.
func (t *Tally) Record(name string, c Counts) {
	t.Rows = append(t.Rows, Row{Name: name, Counts: c})
	t.Total = t.Total.Add(c)
}

// Count reads r to the end. A final line without a newline still counts as
// a line. Invalid UTF-8 bytes count as one character each.
func Count(r io.Reader) (Counts, error) {
	var counts Counts
	br := bufio.NewReader(r)
	inWord := false
	last := '\n'

	for {
		ru, size, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return counts, fmt.Errorf("reading input: %w", err)
		}

		counts.Bytes += int64(size)
		counts.Chars++
		last = ru

		if ru == '\n' {
			counts.Lines++
		}

		if unicode.IsSpace(ru) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.Words++
		}
	}

	if last != '\n' {
		counts.Lines++
	}
	return counts, nil
}

// withDefaults selects lines, words, and bytes when nothing is selected.
func (cfg Config) withDefaults() Config {
	if !cfg.Lines && !cfg.Words && !cfg.Bytes && !cfg.Chars {
		cfg.Lines, cfg.Words, cfg.Bytes = true, true, true
	}
	return cfg
}

// Validate rejects combinations the flags cannot express.
func (cfg Config) Validate() error {
	if cfg.Bytes && cfg.Chars {
		return textio.NewError(textio.ParseError, toolName, "", errors.New("byte and character counts are mutually exclusive"))
	}
	return nil
}

// Format renders one output row. The name column is dropped for stdin.
func (cfg Config) Format(c Counts, name string) string {
	var b strings.Builder
	if cfg.Lines {
		fmt.Fprintf(&b, "%8d", c.Lines)
	}
	if cfg.Words {
		fmt.Fprintf(&b, "%8d", c.Words)
	}
	if cfg.Bytes {
		fmt.Fprintf(&b, "%8d", c.Bytes)
	}
	if cfg.Chars {
		fmt.Fprintf(&b, "%8d", c.Chars)
	}
	if name != textio.Stdin {
		b.WriteString(" " + name)
	}
	b.WriteByte('\n')
	return b.String()
}

// Run counts every input and prints one row each, plus a total row when there
// is more than one input. An input that cannot be opened aborts the run; rows
// already printed remain.
func Run(cfg Config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) (*Tally, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	files := cfg.Files
	if len(files) == 0 {
		files = []string{textio.Stdin}
	}

	out := bufio.NewWriter(stdout)
	tally := &Tally{}
	for _, name := range files {
		err := textio.WithInput(toolName, name, stdin, logger, func(r io.Reader) error {
			counts, err := Count(r)
			if err != nil {
				return textio.NewError(textio.IOError, toolName, name, err)
			}
			logger.Debug("Counted input",
				zap.String("file", name),
				zap.Int64("lines", counts.Lines),
				zap.Int64("words", counts.Words),
				zap.Int64("bytes", counts.Bytes),
				zap.Int64("chars", counts.Chars))
			tally.Record(name, counts)
			if _, err := io.WriteString(out, cfg.Format(counts, name)); err != nil {
				return textio.NewError(textio.IOError, toolName, "", err)
			}
			return nil
		})
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				err = multierr.Append(err, flushErr)
			}
			return tally, err
		}
	}

	if len(files) > 1 {
		if _, err := io.WriteString(out, cfg.Format(tally.Total, "total")); err != nil {
			return tally, textio.NewError(textio.IOError, toolName, "", err)
		}
	}
	if err := out.Flush(); err != nil {
		return tally, textio.NewError(textio.IOError, toolName, "", err)
	}
	return tally, nil
}
