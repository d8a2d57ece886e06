package main

import (
	"os"

	"github.com/termdeck/termdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
