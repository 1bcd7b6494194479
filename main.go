package main

import (
	"os"

	"github.com/abhisek/infoquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
