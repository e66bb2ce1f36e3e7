package main

import (
	"os"

	"github.com/mhruby/kantor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
