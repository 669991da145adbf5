// Package textio holds the input and output plumbing shared by the text tools:
// opening files or standard input, creating output files, and classifying
// failures.
package textio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// Open returns a reader for path, or for stdin when path is "-".
// Closing the returned reader never closes stdin.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// WithInput opens path, hands it to fn, and closes it afterwards.
// The open failure is returned as an OpenError; a close failure is merged into
// whatever fn returned.
func WithInput(tool, path string, stdin io.Reader, logger *zap.Logger, fn func(r io.Reader) error) (err error) {
	r, err := Open(path, stdin)
	if err != nil {
		logger.Debug("Failed to open input", zap.String("file", path), zap.Error(err))
		return NewError(OpenError, tool, path, pathCause(err))
	}
	logger.Debug("Opened input", zap.String("file", path))
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			err = multierr.Append(err, NewError(IOError, tool, path, closeErr))
		}
	}()

	return fn(r)
}

// WithOutput runs fn against a buffered writer over path, or over stdout when
// path is empty. The buffer is flushed and the file closed before returning.
func WithOutput(tool, path string, stdout io.Writer, logger *zap.Logger, fn func(w io.Writer) error) (err error) {
	dst := stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			logger.Debug("Failed to create output", zap.String("file", path), zap.Error(createErr))
			return NewError(OpenError, tool, path, pathCause(createErr))
		}
		logger.Debug("Created output", zap.String("file", path))
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = multierr.Append(err, NewError(IOError, tool, path, closeErr))
			}
		}()
		dst = f
	}

	bw := bufio.NewWriter(dst)
	if err := fn(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return NewError(IOError, tool, path, err)
	}
	return nil
}

// pathCause drops the *fs.PathError wrapper, whose path the caller repeats.
func pathCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
