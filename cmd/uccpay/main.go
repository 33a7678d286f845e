package main

import (
	"os"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
