package main

import (
	"os"

	"realestate/cmd/realestate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
