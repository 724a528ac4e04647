package main

import (
	"os"

	"aplusb/cmd/aplusb/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
