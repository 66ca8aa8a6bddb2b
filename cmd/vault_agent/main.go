// Package main provides the entry point for the Career Vault HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vault_agent",
	Short: "Career Vault HTTP API Server",
	Long:  "Career Vault stores scored career evidence and compiles new evidence from linked repositories, exposing onboarding, CV generation, and interview prep workflows via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
