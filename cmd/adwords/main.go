package main

import (
	"os"

	"github.com/shamank/adwords-sdk-go/cmd/adwords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
