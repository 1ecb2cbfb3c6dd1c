package main

import (
	"os"

	"ml-lifecycle-service/cmd/mlctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
