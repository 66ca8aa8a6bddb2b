package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/career-vault/internal/analysis"
	"github.com/jonathan/career-vault/internal/github"
	"github.com/jonathan/career-vault/internal/llm"
	"github.com/jonathan/career-vault/internal/prompts"
)

// maxRepos caps how many repositories one run analyzes.
const maxRepos = 10

// RepoSource lists repositories and probes commit counts. Implemented by
// *github.Client.
type RepoSource interface {
	ListRepos(ctx context.Context, token string) ([]github.Repo, error)
	CommitCount(ctx context.Context, token, fullName string) (int, error)
}

// TextGenerator produces narrative text from a prompt. Implemented by
// llm.Client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// DraftStore persists the staged result of a run. Implemented by *db.DB.
type DraftStore interface {
	InsertDraft(ctx context.Context, runID string, userID int64, draftJSON []byte) error
}

// DraftRepo is one analyzed repository inside a draft.
type DraftRepo struct {
	Name      string                `json:"name"`
	Analysis  analysis.RepoAnalysis `json:"analysis"`
	Narrative string                `json:"narrative"`
}

// Draft is the staged output of one run, stored as a validated JSON blob.
type Draft struct {
	Repos []DraftRepo `json:"repos"`
}

// Runner wires the compiler's collaborators.
type Runner struct {
	Repos  RepoSource
	Text   TextGenerator
	Drafts DraftStore
}

// Run executes one compilation for an already-authorized user. The caller
// has verified the user exists and holds a linked credential; from here
// every failure is reported through the sink as a terminal error record.
//
// The run is strictly sequential: repositories are analyzed and narrated
// one at a time so progress steps increase monotonically and the upstream
// APIs see bounded load. Exactly one terminal record is emitted unless the
// sink itself fails, in which case the consumer is gone and the run just
// stops (the returned error is for logging only).
func (r *Runner) Run(ctx context.Context, userID int64, token string, emit Sink) error {
	repos, err := r.Repos.ListRepos(ctx, token)
	if err != nil {
		return emit(Event{Type: EventError, Message: fmt.Sprintf("repository listing failed: %v", err)})
	}

	owned := make([]github.Repo, 0, maxRepos)
	for _, repo := range repos {
		if repo.Fork {
			continue
		}
		owned = append(owned, repo)
		if len(owned) == maxRepos {
			break
		}
	}
	if len(owned) == 0 {
		return emit(Event{Type: EventError, Message: "No owned repositories found."})
	}

	// 1 listing step + 2 steps per repo + 1 persistence step.
	total := 2*len(owned) + 2
	step := 1
	if err := emit(Event{
		Type:    EventProgress,
		Message: fmt.Sprintf("Found %d repositories to analyze", len(owned)),
		Step:    step,
		Total:   total,
	}); err != nil {
		return err
	}

	results := make([]DraftRepo, 0, len(owned))
	for i, repo := range owned {
		step++
		if err := emit(Event{
			Type:    EventProgress,
			Message: fmt.Sprintf("Analyzing %s (%d/%d)...", repo.FullName, i+1, len(owned)),
			Step:    step,
			Total:   total,
		}); err != nil {
			return err
		}

		// Optional enrichment: the commit-count probe is best effort.
		// Any failure defaults the count to zero and the run continues.
		commitCount, err := r.Repos.CommitCount(ctx, token, repo.FullName)
		if err != nil {
			log.Printf("commit count probe failed for %s: %v", repo.FullName, err)
			commitCount = 0
		}

		repoAnalysis := analysis.AnalyzeRepo(analysis.RepoInput{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Stars:       repo.Stars,
			Language:    repo.Language,
			Fork:        repo.Fork,
			CommitCount: commitCount,
		})

		step++
		if err := emit(Event{
			Type:    EventProgress,
			Message: fmt.Sprintf("Writing narrative for %s...", repo.FullName),
			Step:    step,
			Total:   total,
		}); err != nil {
			return err
		}

		narrative, err := r.Text.GenerateContent(ctx, narrativePrompt(repoAnalysis), llm.TierLite)
		if err != nil {
			return emit(Event{Type: EventError, Message: fmt.Sprintf("narrative generation failed for %s: %v", repo.FullName, err)})
		}

		results = append(results, DraftRepo{
			Name:      repoAnalysis.Name,
			Analysis:  repoAnalysis,
			Narrative: narrative,
		})
	}

	runID := uuid.New().String()

	draftJSON, err := json.Marshal(Draft{Repos: results})
	if err != nil {
		return emit(Event{Type: EventError, Message: fmt.Sprintf("draft encoding failed: %v", err)})
	}
	if err := ValidateDraftJSON(draftJSON); err != nil {
		return emit(Event{Type: EventError, Message: err.Error()})
	}
	if err := r.Drafts.InsertDraft(ctx, runID, userID, draftJSON); err != nil {
		return emit(Event{Type: EventError, Message: fmt.Sprintf("draft persistence failed: %v", err)})
	}

	return emit(Event{Type: EventComplete, RunID: runID})
}

// narrativePrompt renders the narrative prompt for one analysis record.
func narrativePrompt(a analysis.RepoAnalysis) string {
	languages := strings.Join(a.Languages, ", ")
	if languages == "" {
		languages = "unknown"
	}
	return prompts.Format(prompts.MustGet("compiler.json", "narrative"), map[string]string{
		"Name":      a.Name,
		"Stars":     strconv.Itoa(a.Stars),
		"Languages": languages,
		"Score":     strconv.Itoa(a.CredibilityBaseScore),
		"HasTests":  strconv.FormatBool(a.HasTests),
		"Deployed":  strconv.FormatBool(a.IsDeployed),
	})
}
