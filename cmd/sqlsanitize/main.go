package main

import (
	"os"

	"github.com/tracewell/sqlsanitize/cmd/sqlsanitize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
