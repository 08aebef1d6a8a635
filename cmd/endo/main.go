package main

import (
	"github.com/sweeze/endo/cmd/cli"
)

func main() {
	cli.Execute()
}
