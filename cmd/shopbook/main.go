package main

import (
	"os"

	"github.com/shopbook-dev/shopbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
