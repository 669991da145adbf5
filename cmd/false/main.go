// Command false exits unsuccessfully.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("false", os.Args[1:], cmd.DefaultStreams()))
}
