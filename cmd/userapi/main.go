package main

import (
	"os"

	"github.com/jorism/userapi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
