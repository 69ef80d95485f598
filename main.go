package main

import (
	"os"

	"github.com/xaheen/xaheen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
