package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSolution_ThoroughAnswer(t *testing.T) {
	solution := "First I would outline the algorithm. Then I would implement it with a hash map for O(1) lookups. " +
		"Finally I would verify the time and space complexity and walk through edge cases step by step. " +
		strings.Repeat("More detail on the approach. ", 4)

	scores := ScoreSolution(solution, DefaultWeights())

	// Length >= 200, technical and complexity vocabulary both present.
	assert.Equal(t, 100, scores.Correctness)
	// >= 3 sentences plus sequencing words.
	assert.Equal(t, 90, scores.Clarity)
	assert.Equal(t, 80, scores.Completeness)
	assert.Equal(t, 91, scores.Total)
}

func TestScoreSolution_ShortAnswer(t *testing.T) {
	scores := ScoreSolution("use a map", DefaultWeights())

	assert.Equal(t, 50, scores.Correctness)
	// One sentence-like segment, no terminator needed for the count.
	assert.Equal(t, 60, scores.Clarity)
	assert.Equal(t, 50, scores.Completeness)
	assert.Equal(t, 53, scores.Total)
}

func TestScoreSolution_EmptySolution(t *testing.T) {
	scores := ScoreSolution("   ", DefaultWeights())
	assert.Equal(t, 50, scores.Correctness)
	assert.Equal(t, 50, scores.Clarity)
	assert.Equal(t, 50, scores.Completeness)
	assert.Equal(t, 50, scores.Total)
}

func TestScoreSolution_LengthTiers(t *testing.T) {
	mid := strings.Repeat("x", 100)
	scores := ScoreSolution(mid, DefaultWeights())
	assert.Equal(t, 65, scores.Correctness)
	assert.Equal(t, 70, scores.Completeness)
}

func TestScoreSolution_WeightsShiftTotal(t *testing.T) {
	solution := "First the approach. Then the implementation. Finally the tests."

	balanced := ScoreSolution(solution, DefaultWeights())
	correctnessHeavy := ScoreSolution(solution, Weights{Correctness: 100})

	assert.NotEqual(t, balanced.Total, correctnessHeavy.Total)
	assert.Equal(t, correctnessHeavy.Correctness, correctnessHeavy.Total)
}

func TestScoreSolution_Deterministic(t *testing.T) {
	solution := "Implement a queue. Then drain it."
	assert.Equal(t,
		ScoreSolution(solution, DefaultWeights()),
		ScoreSolution(solution, DefaultWeights()))
}
