package main

import (
	"os"

	"github.com/mqlforge/mqlforge/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
