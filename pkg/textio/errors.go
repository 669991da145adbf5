package textio

import (
	"errors"
	"fmt"
)

// Kind classifies the failures a tool can report.
type Kind int

const (
	// UnknownError is the kind of any error not produced by this package.
	UnknownError Kind = iota
	// ParseError covers invalid flags, flag values, and positional arguments.
	ParseError
	// OpenError covers inputs that cannot be opened and outputs that cannot be created.
	OpenError
	// IOError covers failures while reading or writing an already opened stream.
	IOError
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case OpenError:
		return "open error"
	case IOError:
		return "io error"
	default:
		return "unknown error"
	}
}

// Error is a classified tool failure.
type Error struct {
	Kind Kind   // Failure class
	Tool string // Tool name used as the message prefix, may be empty
	Path string // File the failure relates to, may be empty
	Err  error  // Underlying cause
}

// Error formats as "tool: path: cause", omitting empty parts.
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Tool != "" {
		msg = fmt.Sprintf("%s: %s", e.Tool, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error. It returns nil when err is nil.
func NewError(kind Kind, tool, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Tool: tool, Path: path, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return UnknownError
}
