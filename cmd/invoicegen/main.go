package main

import (
	"os"

	"rishabgems/invoicegen/cmd/invoicegen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
