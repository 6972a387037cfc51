package main

import (
	"os"

	"github.com/opd-ai/go-xelis/cmd/xelis/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
