package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-vault/internal/cvstructure"
	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/observability"
)

var (
	cvEmail   string
	cvRole    string
	cvCompany string
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Build a CV outline from a user's vault",
	Long: `Build the deterministic CV outline for a user from their stored evidence and print it.

The outline is computed locally from the vault; model tailoring is only available through the HTTP API.`,
	RunE: runCV,
}

func init() {
	cvCmd.Flags().StringVar(&cvEmail, "email", "", "Email of the onboarded user to build the outline for")
	cvCmd.Flags().StringVar(&cvRole, "role", "", "Target role the outline is aimed at")
	cvCmd.Flags().StringVar(&cvCompany, "company", "", "Target company, if any")
	_ = cvCmd.MarkFlagRequired("email")
	_ = cvCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(cvCmd)
}

func runCV(_ *cobra.Command, _ []string) error {
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

	user, err := database.GetUserByEmail(ctx, cvEmail)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found: %s", cvEmail)
	}

	records, err := database.ListEvidenceByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	structure := cvstructure.NewStructure(cvRole, cvCompany, outlineItems(records))
	observability.NewPrinter(os.Stdout).PrintStructure(&structure)
	return nil
}

// outlineItems maps stored evidence rows to the structurer's input slice.
func outlineItems(records []db.Evidence) []cvstructure.EvidenceItem {
	items := make([]cvstructure.EvidenceItem, 0, len(records))
	for _, rec := range records {
		items = append(items, cvstructure.EvidenceItem{
			Type:             rec.Type,
			Title:            rec.Title,
			Description:      rec.Description,
			CredibilityScore: rec.CredibilityScore,
			SkillTags:        rec.SkillTags,
		})
	}
	return items
}
