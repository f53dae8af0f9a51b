package main

import (
	"os"

	"cifra/cmd/cifra/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
