package main

import (
	"os"

	"github.com/styletree/styletree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
