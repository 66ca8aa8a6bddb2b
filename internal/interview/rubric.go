// Package interview holds the deterministic half of interview practice:
// rubric scoring of free-text solutions and seeded problem-template
// selection. LLM feedback is generated elsewhere and never affects scores.
package interview

import (
	"math"
	"regexp"
	"strings"
)

// Weights are the rubric weights used to combine sub-scores. They are
// expected to sum to 100.
type Weights struct {
	Correctness  int `json:"correctness"`
	Clarity      int `json:"clarity"`
	Completeness int `json:"completeness"`
}

// DefaultWeights is the fallback rubric when a template carries none.
func DefaultWeights() Weights {
	return Weights{Correctness: 40, Clarity: 30, Completeness: 30}
}

// Scores holds the rubric sub-scores and their weighted total, all 0-100.
type Scores struct {
	Correctness  int `json:"correctness"`
	Clarity      int `json:"clarity"`
	Completeness int `json:"completeness"`
	Total        int `json:"total"`
}

var (
	technicalVocab  = regexp.MustCompile(`(?i)\b(algorithm|approach|solution|implement)\b`)
	complexityVocab = regexp.MustCompile(`(?i)(O\(|\btime\b|\bspace\b|\bcomplexity\b)`)
	sequencingVocab = regexp.MustCompile(`(?i)(first|then|finally|step)`)
	sentenceEnd     = regexp.MustCompile(`[.!?]+`)
)

// ScoreSolution scores a free-text solution against the rubric.
// Deterministic given text and weights.
func ScoreSolution(solution string, weights Weights) Scores {
	text := strings.TrimSpace(solution)
	length := len(text)

	correctness := 50
	switch {
	case length >= 200:
		correctness += 25
	case length >= 100:
		correctness += 15
	case length >= 50:
		correctness += 5
	}
	if technicalVocab.MatchString(text) {
		correctness += 15
	}
	if complexityVocab.MatchString(text) {
		correctness += 10
	}

	clarity := 50
	sentences := countSentences(text)
	switch {
	case sentences >= 3:
		clarity += 25
	case sentences >= 1:
		clarity += 10
	}
	if sequencingVocab.MatchString(text) {
		clarity += 15
	}

	completeness := 50
	switch {
	case length >= 150:
		completeness += 30
	case length >= 80:
		completeness += 20
	case length >= 40:
		completeness += 10
	}

	correctness = clamp100(correctness)
	clarity = clamp100(clarity)
	completeness = clamp100(completeness)

	total := int(math.Round(float64(
		correctness*weights.Correctness+
			clarity*weights.Clarity+
			completeness*weights.Completeness) / 100.0))

	return Scores{
		Correctness:  correctness,
		Clarity:      clarity,
		Completeness: completeness,
		Total:        clamp100(total),
	}
}

// countSentences counts non-empty segments delimited by sentence
// terminators.
func countSentences(text string) int {
	count := 0
	for _, segment := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func clamp100(n int) int {
	if n > 100 {
		return 100
	}
	return n
}
