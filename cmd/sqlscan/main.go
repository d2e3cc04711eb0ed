// Package main provides the sqlscan CLI.
package main

import (
	"os"

	"github.com/dbsuite/sqlscan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
