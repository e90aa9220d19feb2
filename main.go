package main

import (
	"os"

	"github.com/alpacahq/bizday/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
