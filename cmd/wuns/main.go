package main

import (
	"os"

	"github.com/zoren/go-wuns/cmd/wuns/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
