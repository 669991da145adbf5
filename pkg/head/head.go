// Package head prints the first lines or bytes of each input.
package head

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"textutils/pkg/textio"

	"go.uber.org/zap"
)

// DefaultLines is the number of lines printed when no limit is given.
const DefaultLines = 10

const toolName = "headr"

// Config holds the options for one head invocation.
type Config struct {
	Files []string // Input names; "-" is standard input
	Lines int      // Maximum lines per input, used when Bytes is zero
	Bytes int      // Maximum bytes per input; zero selects line mode
}

// Streams bundles the process streams a run reads from and writes to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run prints the head of every input in cfg.Files.
// Inputs that fail to open are reported on Stderr and skipped.
func Run(cfg Config, s Streams, logger *zap.Logger) error {
	if cfg.Bytes < 0 || (cfg.Bytes == 0 && cfg.Lines <= 0) {
		return textio.NewError(textio.ParseError, toolName, "", fmt.Errorf("invalid limits: lines=%d bytes=%d", cfg.Lines, cfg.Bytes))
	}
	files := cfg.Files
	if len(files) == 0 {
		files = []string{textio.Stdin}
	}

	out := bufio.NewWriter(s.Stdout)
	printed := 0
	for _, name := range files {
		err := textio.WithInput(toolName, name, s.Stdin, logger, func(r io.Reader) error {
			if len(files) > 1 {
				if printed > 0 {
					if err := out.WriteByte('\n'); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(out, "==> %s <==\n", name); err != nil {
					return err
				}
			}
			printed++
			return copyHead(out, r, cfg)
		})
		if textio.KindOf(err) == textio.OpenError {
			// Keep what is already buffered ordered before the warning.
			if flushErr := out.Flush(); flushErr != nil {
				return textio.NewError(textio.IOError, toolName, "", flushErr)
			}
			logger.Warn("Skipping input", zap.String("file", name), zap.Error(err))
			fmt.Fprintf(s.Stderr, "%s\n", err)
			continue
		}
		if err != nil {
			var te *textio.Error
			if errors.As(err, &te) {
				return err
			}
			return textio.NewError(textio.IOError, toolName, name, err)
		}
	}

	if err := out.Flush(); err != nil {
		return textio.NewError(textio.IOError, toolName, "", err)
	}
	return nil
}

// copyHead copies the configured prefix of r to w.
func copyHead(w io.Writer, r io.Reader, cfg Config) error {
	if cfg.Bytes > 0 {
		return copyBytes(w, r, int64(cfg.Bytes))
	}
	return copyLines(w, r, cfg.Lines)
}

// copyBytes copies at most n bytes; a shorter input is not an error.
func copyBytes(w io.Writer, r io.Reader, n int64) error {
	_, err := io.CopyN(w, r, n)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// copyLines copies at most n lines with their original terminators.
func copyLines(w io.Writer, r io.Reader, n int) error {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if _, werr := io.WriteString(w, line); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
