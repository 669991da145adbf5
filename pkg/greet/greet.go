// Package greet holds the tools that take no input: hello and the true and
// false status programs.
package greet

import (
	"errors"
	"io"

	"textutils/pkg/textio"
)

// Greeting is the line printed by hello.
const Greeting = "Hello, world!"

// ErrFalse is returned by False. Callers exit non-zero without a message.
var ErrFalse = errors.New("false")

// Hello writes the greeting followed by a newline. A failed write is an
// IOError.
func Hello(w io.Writer) error {
	_, err := io.WriteString(w, Greeting+"\n")
	return textio.NewError(textio.IOError, "hello", "", err)
}

// True does nothing and succeeds.
func True() error { return nil }

// False does nothing and fails.
func False() error { return ErrFalse }
