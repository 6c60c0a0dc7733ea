package main

import (
	"os"

	"github.com/spigell/talent-alchemy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
