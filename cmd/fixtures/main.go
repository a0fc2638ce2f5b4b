package main

import (
	"os"

	"github.com/Rosvend/REST-Api-NoSQL/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
