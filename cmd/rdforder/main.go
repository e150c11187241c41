package main

import (
	"fmt"
	"os"

	"github.com/roach88/rdforder/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rdforder: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
