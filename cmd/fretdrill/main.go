package main

import (
	"fmt"
	"os"

	"github.com/roach88/fretdrill/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func run() error {
	return cli.NewRootCommand().Execute()
}
