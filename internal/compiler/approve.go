package compiler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/scoring"
)

// ErrDraftNotFound indicates the run identifier has no staged draft.
var ErrDraftNotFound = errors.New("draft not found")

// DraftReader loads staged drafts. Implemented by *db.DB.
type DraftReader interface {
	GetDraftByRunID(ctx context.Context, runID string) (*db.CompilerDraft, error)
}

// EvidenceStore inserts approved evidence records. Implemented by *db.DB.
type EvidenceStore interface {
	InsertEvidence(ctx context.Context, input db.NewEvidence) (*db.Evidence, error)
}

// SelectedItem is one draft entry the user chose to approve. The draft
// lookup authorizes the run and locates the owning user; item contents
// are taken as submitted and are not matched back against the draft.
type SelectedItem struct {
	Name                 string   `json:"name" validate:"required"`
	Narrative            string   `json:"narrative"`
	CredibilityBaseScore int      `json:"credibilityBaseScore" validate:"min=0,max=100"`
	Languages            []string `json:"languages"`
}

// CreatedEvidence summarizes one evidence record minted by approval.
type CreatedEvidence struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Approve converts selected draft items into evidence records. Each item
// is re-scored fresh as a public-repo project and averaged with the
// client-echoed base score; a new share token is minted per record.
// Approval is not idempotent: approving the same draft twice creates two
// independent sets of records.
func Approve(ctx context.Context, drafts DraftReader, store EvidenceStore, runID string, selected []SelectedItem) ([]CreatedEvidence, error) {
	draft, err := drafts.GetDraftByRunID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	created := make([]CreatedEvidence, 0, len(selected))
	for _, item := range selected {
		composite := item.Name + " " + item.Narrative + " " + strings.Join(item.Languages, " ")
		tags := scoring.ExtractTags(composite)

		fresh := scoring.Score(scoring.EvidenceInput{
			Type:          scoring.TypeProject,
			Title:         item.Name,
			Description:   item.Narrative,
			Links:         []string{"https://github.com/" + item.Name},
			HasPublicRepo: true,
		})
		final := int(math.Round(float64(fresh+item.CredibilityBaseScore) / 2))

		token, err := db.NewShareToken()
		if err != nil {
			return nil, fmt.Errorf("failed to mint share token: %w", err)
		}

		record, err := store.InsertEvidence(ctx, db.NewEvidence{
			UserID:           draft.UserID,
			Type:             string(scoring.TypeProject),
			Title:            item.Name,
			Description:      item.Narrative,
			CredibilityScore: final,
			SkillTags:        tags,
			ShareToken:       token,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, CreatedEvidence{ID: record.ID, Title: record.Title})
	}
	return created, nil
}
