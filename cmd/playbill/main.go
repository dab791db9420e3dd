package main

import (
	"fmt"
	"os"

	"github.com/andy/playbill/internal/cli"
)

func main() {
	err := cli.Execute()
	cli.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorPrefix(), err)
		os.Exit(1)
	}
}
