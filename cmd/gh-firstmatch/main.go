package main

import (
	"os"

	"github.com/firstmatch/gh-firstmatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
