// Command xwordfill fills a crossword grid from a dictionary using
// constraint satisfaction, or runs one of its supporting subcommands
// (stats, validate, batch). See cmd/xwordfill/cmd for the flag surface.
package main

import (
	"os"

	"github.com/latticewords/xfill/cmd/xwordfill/cmd"
)

func main() {
	err := cmd.Execute()
	os.Exit(cmd.ExitCode(err))
}
