package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"textutils/pkg/textio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Streams are the standard streams a command runs against.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process's standard streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunTool runs the tool registered under name (subcommand or binary name)
// as a standalone program and returns its exit code.
func RunTool(name string, args []string, s Streams) int {
	t, ok := lookupTool(name)
	if !ok {
		fmt.Fprintf(s.Err, "%s: unknown tool\n", name)
		return 1
	}
	a := newApp()
	return execute(newToolRoot(a, t, name), a, args, s)
}

// Main is the multi-call entry point. When argv[0] names a tool it runs that
// tool; otherwise argv[1] selects the tool as a subcommand.
func Main(argv []string, s Streams) int {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	if len(argv) > 0 {
		if name := filepath.Base(argv[0]); name != MultiCallName {
			if _, ok := lookupTool(name); ok {
				return RunTool(name, args, s)
			}
		}
	}

	a := newApp()
	return execute(newMultiCallRoot(a), a, args, s)
}

// execute runs root and turns its outcome into an exit code.
func execute(root *cobra.Command, a *app, args []string, s Streams) int {
	root.SetArgs(args)
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	c, err := root.ExecuteC()
	defer syncLogger(a.logger, s.Err)
	if err == nil {
		return 0
	}
	if c == nil {
		c = root
	}

	a.logger.Debug("Command failed", zap.String("command", c.CommandPath()), zap.Error(err))
	return report(c, err, s.Err)
}

// report prints err the way its kind calls for and returns the exit code.
func report(c *cobra.Command, err error, stderr io.Writer) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Tool packages classify their own failures, so an unclassified error
	// comes from cobra's validation (flag groups, unknown subcommands).
	switch textio.KindOf(err) {
	case textio.ParseError, textio.UnknownError:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, c.UsageString())
	default:
		fmt.Fprintln(stderr, err)
	}
	return 1
}

// syncLogger flushes the debug log written to stderr. Pipes and character
// devices other than terminals reject fsync, so they are skipped.
func syncLogger(logger *zap.Logger, stderr io.Writer) {
	if f, ok := stderr.(*os.File); ok && !canSync(f) {
		return
	}
	if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
		fmt.Fprintf(stderr, "debug log sync: %v\n", err)
	}
}

// canSync reports whether f is a terminal or a regular file.
func canSync(f *os.File) bool {
	if term.IsTerminal(int(f.Fd())) {
		return true
	}
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
