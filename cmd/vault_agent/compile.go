package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-vault/internal/compiler"
	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/github"
	"github.com/jonathan/career-vault/internal/llm"
	"github.com/jonathan/career-vault/internal/observability"
)

var (
	compileEmail string
	compileJSON  bool
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Run the evidence compiler for a user from the command line",
	Long: `Run the evidence compiler against a user's linked GitHub account without going through the HTTP API.

Progress is printed as it happens; pass --json to emit the raw newline-delimited records instead.`,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&compileEmail, "email", "", "Email of the onboarded user to compile for")
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "Emit raw NDJSON records instead of formatted progress")
	_ = compileCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	user, err := database.GetUserByEmail(ctx, compileEmail)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found: %s", compileEmail)
	}
	integration, err := database.GetGitHubIntegration(ctx, user.ID)
	if err != nil {
		return err
	}
	if integration == nil {
		return fmt.Errorf("no linked GitHub account for %s", compileEmail)
	}

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer llmClient.Close()

	runner := &compiler.Runner{
		Repos:  github.NewClient(github.Config{}),
		Text:   llmClient,
		Drafts: database,
	}

	// The runner produces the same record stream the HTTP API serves;
	// the consumer side reads it back off a pipe and renders it.
	pr, pw := io.Pipe()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer pw.Close()
		return runner.Run(groupCtx, user.ID, integration.AccessToken, func(e compiler.Event) error {
			return compiler.WriteEvent(pw, e)
		})
	})

	var failed bool
	var runID string
	group.Go(func() error {
		return compiler.ReadEvents(pr, func(e compiler.Event) error {
			if compileJSON {
				return compiler.WriteEvent(os.Stdout, e)
			}
			switch e.Type {
			case compiler.EventProgress:
				fmt.Printf("[%d/%d] %s\n", e.Step, e.Total, e.Message)
			case compiler.EventComplete:
				runID = e.RunID
				fmt.Printf("Draft staged. Run ID: %s\n", e.RunID)
			case compiler.EventError:
				failed = true
				fmt.Fprintf(os.Stderr, "Error: %s\n", e.Message)
			}
			return nil
		})
	})

	if err := group.Wait(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("compilation did not complete")
	}

	if runID != "" && !compileJSON {
		row, err := database.GetDraftByRunID(ctx, runID)
		if err != nil || row == nil {
			return err
		}
		var draft compiler.Draft
		if err := json.Unmarshal(row.DraftJSON, &draft); err != nil {
			return fmt.Errorf("failed to decode staged draft: %w", err)
		}
		observability.NewPrinter(os.Stdout).PrintDraft(runID, &draft)
	}
	return nil
}
