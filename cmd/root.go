// Package cmd defines the cobra commands for every text tool and the entry
// points that run them standalone or through the multi-call binary.
package cmd

import (
	"sort"

	"textutils/pkg/logging"
	"textutils/pkg/textio"
	"textutils/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// MultiCallName is the name of the binary that bundles every tool.
const MultiCallName = "textutils"

type (
	// app carries the state shared by the commands of one invocation.
	app struct {
		debug  bool
		logger *zap.Logger
	}

	// tool pairs a command builder with the name of its standalone binary.
	tool struct {
		binary string
		build  func(a *app, use string) *cobra.Command
	}
)

// tools maps multi-call subcommand names to their builders.
var tools = map[string]tool{
	"echo":  {binary: "echor", build: newEchoCmd},
	"head":  {binary: "headr", build: newHeadCmd},
	"uniq":  {binary: "uniqr", build: newUniqCmd},
	"wc":    {binary: "wcr", build: newWcCmd},
	"hello": {binary: "hello", build: newHelloCmd},
	"true":  {binary: "true", build: newTrueCmd},
	"false": {binary: "false", build: newFalseCmd},
}

// lookupTool finds a tool by subcommand or standalone binary name.
func lookupTool(name string) (tool, bool) {
	if t, ok := tools[name]; ok {
		return t, true
	}
	for _, t := range tools {
		if t.binary == name {
			return t, true
		}
	}
	return tool{}, false
}

func newApp() *app {
	return &app{logger: zap.NewNop()}
}

// setupLogger builds the logger once flags are parsed.
func (a *app) setupLogger(cmd *cobra.Command, _ []string) error {
	logger, err := logging.Setup(a.debug, cmd.Root().Name(), version.Version)
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	a.logger.Debug("Starting command", zap.Strings("args", cmd.Flags().Args()))
	return nil
}

// configureRoot applies the settings every top-level command shares.
func (a *app) configureRoot(root *cobra.Command) {
	root.Version = version.Version
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.PersistentPreRunE = a.setupLogger
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "write debug logs to stderr")
	_ = root.PersistentFlags().MarkHidden("debug")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if valueErr := positiveIntError(cmd); valueErr != nil {
			err = valueErr
		}
		return textio.NewError(textio.ParseError, "", "", err)
	})
}

// newToolRoot builds a single tool as its own root command named use.
func newToolRoot(a *app, t tool, use string) *cobra.Command {
	root := t.build(a, use)
	a.configureRoot(root)
	return root
}

// newMultiCallRoot builds the textutils command with every tool as a subcommand.
func newMultiCallRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   MultiCallName,
		Short: "Classic Unix text tools",
		Long: `textutils bundles small re-implementations of echo, head, uniq and wc,
plus hello, true and false. Each tool is also built as a standalone binary
and textutils runs a tool directly when invoked under that tool's name.`,
		Args: validArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	a.configureRoot(root)

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sub := tools[name].build(a, name)
		if !sub.DisableFlagParsing {
			sub.Version = version.Version
		}
		root.AddCommand(sub)
	}
	root.AddCommand(newVersionCmd())
	return root
}

// validArgs classifies positional argument failures as parse errors.
func validArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return textio.NewError(textio.ParseError, "", "", v(cmd, args))
	}
}
