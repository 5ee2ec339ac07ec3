package main

import (
	"fmt"
	"os"

	"github.com/averycrespi/mcp-apps/cmd/mcp-apps/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
