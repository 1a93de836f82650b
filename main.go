package main

import (
	"os"

	"github.com/cristianoliveira/coursedash/cmd"
	"github.com/cristianoliveira/coursedash/internal/colors"
)

func main() {
	colors.StructuredInfo("startup", "main", "started", nil)
	if err := cmd.Execute(); err != nil {
		colors.StructuredError("startup", "main", "failed", err, nil)
		os.Exit(1)
	}
	colors.StructuredInfo("startup", "main", "completed", nil)
}
