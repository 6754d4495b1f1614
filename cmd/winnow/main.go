package main

import (
	"os"

	"github.com/crimson-sun/winnow/cmd/winnow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
