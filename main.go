package main

import (
	"os"

	"github.com/gapmapdev/gapmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
