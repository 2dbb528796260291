package main

import (
	"os"

	"stockroom/internal/adapter/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
