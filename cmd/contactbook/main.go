package main

import (
	"os"

	"contactbook/cmd/contactbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
