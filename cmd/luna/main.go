package main

import (
	"os"

	"luna/cmd/luna/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
