package main

import (
	"os"

	"github.com/SscSPs/freight_management_app/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
