// Command wcr counts lines, words, bytes and characters.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("wcr", os.Args[1:], cmd.DefaultStreams()))
}
