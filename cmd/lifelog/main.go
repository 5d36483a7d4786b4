package main

import (
	"os"

	"github.com/crispyBCN13/LifeLog/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
