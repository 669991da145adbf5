// Command textutils is the multi-call binary exposing every text tool as a
// subcommand, or directly when invoked through a link named after a tool.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args, cmd.DefaultStreams()))
}
