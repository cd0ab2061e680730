// Package main is the entry point for the hh marketplace CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"househunt/internal/cli"
	"househunt/internal/logging"
)

func main() {
	// Optional .env for HH_SERVER_URL / HH_TOKEN overrides.
	_ = godotenv.Load()

	logging.Setup(os.Getenv("HH_DEBUG") != "")

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
