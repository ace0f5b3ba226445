package main

import (
	"os"

	"github.com/oceaniq/oceaniq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
