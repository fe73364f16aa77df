package main

import (
	"os"

	"github.com/ovrica/sget/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
