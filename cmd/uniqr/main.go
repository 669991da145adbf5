// Command uniqr collapses adjacent duplicate lines.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("uniqr", os.Args[1:], cmd.DefaultStreams()))
}
