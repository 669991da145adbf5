// Command hello prints a greeting.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("hello", os.Args[1:], cmd.DefaultStreams()))
}
