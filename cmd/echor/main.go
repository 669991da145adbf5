// Command echor prints its arguments separated by spaces.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("echor", os.Args[1:], cmd.DefaultStreams()))
}
