package main

import (
	"os"

	"github.com/3-lines-studio/enhance/internal/adapters/cli"
)

func main() {
	output := cli.NewOutput()
	if err := newRootCmd(output).Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
