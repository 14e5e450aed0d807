package main

import (
	"os"

	"github.com/wavelovey/pubmed-search/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
