package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-vault/internal/classification"
	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/interview"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed starter objectives and interview problem templates",
	Long:  `Insert the starter objectives for each career phase and the interview prep problem templates. Intended for a fresh database; running it again appends duplicates.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedObjective struct {
	phaseSlug string
	text      string
	priority  int
	category  string
}

var seedObjectives = []seedObjective{
	{"early_career", "Build portfolio evidence that demonstrates full-stack competence", 1, "evidence"},
	{"early_career", "Close your system design gap for senior frontend roles", 2, "skills"},
	{"mid_career", "Document the projects that prove your specialty, with dates and links", 1, "evidence"},
	{"mid_career", "Collect peer-visible artifacts: talks, write-ups, open source work", 2, "reputation"},
	{"leadership", "Capture team outcomes you drove, not just tasks you did", 1, "evidence"},
	{"leadership", "Practice articulating technical strategy for interviews", 2, "skills"},
	{"executive", "Record organization-level results with before/after measures", 1, "evidence"},
	{"legacy", "Turn your experience into mentorship and advisory evidence", 1, "evidence"},
	{"education", "Ship one public project with tests and a clear README", 1, "evidence"},
}

type seedTemplate struct {
	roleType     string
	difficulty   string
	templateText string
}

var seedTemplates = []seedTemplate{
	{"software_engineer", "easy", "Implement a function that reverses a string. Consider edge cases like empty strings and single characters."},
	{"software_engineer", "medium", "Design a rate limiter. Explain your approach, data structures, and handle concurrent requests."},
	{"frontend", "medium", "Build a debounced search input. Discuss accessibility, performance, and testing strategy."},
	{"backend", "medium", "Design an API for a todo list with priorities. Cover REST design, validation, and scaling considerations."},
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// Every phase slug must already be in the reference table.
	phases := make(map[string]*db.CareerPhase, len(classification.AllPhases))
	for _, slug := range classification.AllPhases {
		phase, err := database.GetPhaseBySlug(ctx, string(slug))
		if err != nil {
			return fmt.Errorf("failed to look up phase %s: %w", slug, err)
		}
		if phase == nil {
			return fmt.Errorf("phase %s missing; run migrate first", slug)
		}
		phases[string(slug)] = phase
	}

	for _, obj := range seedObjectives {
		phase, ok := phases[obj.phaseSlug]
		if !ok {
			return fmt.Errorf("unknown phase slug %s", obj.phaseSlug)
		}
		if err := database.InsertObjective(ctx, phase.ID, obj.text, obj.priority, obj.category); err != nil {
			return fmt.Errorf("failed to insert objective: %w", err)
		}
	}

	rubricJSON, err := json.Marshal(interview.DefaultWeights())
	if err != nil {
		return err
	}
	for _, tpl := range seedTemplates {
		if err := database.InsertProblemTemplate(ctx, tpl.roleType, tpl.difficulty, tpl.templateText, rubricJSON); err != nil {
			return fmt.Errorf("failed to insert problem template: %w", err)
		}
	}

	fmt.Printf("Seeded %d objectives and %d problem templates.\n", len(seedObjectives), len(seedTemplates))
	return nil
}
