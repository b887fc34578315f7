package main

import (
	"os"

	"github.com/adixit/intervue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
