// Command headr prints the first lines or bytes of files.
package main

import (
	"os"

	"textutils/cmd"
)

func main() {
	os.Exit(cmd.RunTool("headr", os.Args[1:], cmd.DefaultStreams()))
}
