package main

import (
	"os"

	"github.com/fmi4go/fmutest/pkg/controller/cli"
)

func main() {
	if cli.Run(os.Args) != nil {
		os.Exit(1)
	}
}
