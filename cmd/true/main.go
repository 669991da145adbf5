// Command true exits successfully.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("true", os.Args[1:], cmd.DefaultStreams()))
}
