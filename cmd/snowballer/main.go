package main

import (
	"os"

	"github.com/phyzicist/snowballer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
