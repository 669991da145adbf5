package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// positiveInt is a flag value that only accepts integers greater than zero.
type positiveInt struct {
	value int
	what  string // used in the error message, e.g. "line count"
	err   error  // last rejected value
}

var _ pflag.Value = (*positiveInt)(nil)

func newPositiveInt(def int, what string) *positiveInt {
	return &positiveInt{value: def, what: what}
}

func (p *positiveInt) String() string { return strconv.Itoa(p.value) }

func (p *positiveInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		p.err = fmt.Errorf("illegal %s -- %s", p.what, s)
		return p.err
	}
	p.value, p.err = n, nil
	return nil
}

func (p *positiveInt) Type() string { return "int" }

// positiveIntError returns the rejection recorded by a positiveInt flag of
// cmd, if any. pflag only keeps the message of a failed Set, prefixed with
// the flag name, so the cause is looked up here instead.
func positiveIntError(cmd *cobra.Command) error {
	var found error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if p, ok := f.Value.(*positiveInt); ok && p.err != nil && found == nil {
			found = p.err
		}
	})
	return found
}
