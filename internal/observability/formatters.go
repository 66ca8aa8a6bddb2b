// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-vault/internal/compiler"
	"github.com/jonathan/career-vault/internal/cvstructure"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDraft outputs a human-readable summary of a staged compiler draft.
func (p *Printer) PrintDraft(runID string, draft *compiler.Draft) {
	if draft == nil || len(draft.Repos) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:   %s\n", runID))
	sb.WriteString(fmt.Sprintf("Repos: %d\n\n", len(draft.Repos)))

	count := min(len(draft.Repos), maxItemsToShow)
	for i := 0; i < count; i++ {
		repo := draft.Repos[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, repo.Name))
		sb.WriteString(fmt.Sprintf("    Base score: %d/100", repo.Analysis.CredibilityBaseScore))
		if repo.Analysis.Stars > 0 {
			sb.WriteString(fmt.Sprintf("  ★%d", repo.Analysis.Stars))
		}
		sb.WriteString("\n")
		if len(repo.Analysis.Languages) > 0 {
			langs := strings.Join(repo.Analysis.Languages, ", ")
			if len(langs) > 40 {
				langs = langs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Languages: %s\n", langs))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(draft.Repos) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more repos", len(draft.Repos)-maxItemsToShow))
	}

	p.printBox("STAGED DRAFT", sb.String())
}

// PrintStructure outputs a human-readable summary of a CV outline.
func (p *Printer) PrintStructure(structure *cvstructure.Structure) {
	if structure == nil || len(structure.Sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Headline: %s\n\n", structure.Headline))

	for _, section := range structure.Sections {
		sb.WriteString(fmt.Sprintf("%s (%d items)\n", section.Title, len(section.Items)))
		count := min(len(section.Items), 3)
		for i := 0; i < count; i++ {
			item := section.Items[i]
			title := item.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s", title))
			if item.Score > 0 {
				sb.WriteString(fmt.Sprintf(" (%d)", item.Score))
			}
			sb.WriteString("\n")
		}
		if len(section.Items) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Items)-3))
		}
	}

	if len(structure.SkillsSummary) > 0 {
		skills := strings.Join(structure.SkillsSummary, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s", skills))
	}

	p.printBox("CV OUTLINE", sb.String())
}
