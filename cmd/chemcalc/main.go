package main

import (
	"os"

	"github.com/rajan221209/Chemistry-Calculator/cmd/chemcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
