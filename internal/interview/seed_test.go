package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateSeed_Stable(t *testing.T) {
	a := TemplateSeed("backend", "medium", "Acme", "2026-08-31")
	b := TemplateSeed("backend", "medium", "Acme", "2026-08-31")
	assert.Equal(t, a, b)
}

func TestTemplateSeed_SensitiveToEachField(t *testing.T) {
	base := TemplateSeed("backend", "medium", "Acme", "2026-08-31")

	assert.NotEqual(t, base, TemplateSeed("frontend", "medium", "Acme", "2026-08-31"))
	assert.NotEqual(t, base, TemplateSeed("backend", "hard", "Acme", "2026-08-31"))
	assert.NotEqual(t, base, TemplateSeed("backend", "medium", "Globex", "2026-08-31"))
	assert.NotEqual(t, base, TemplateSeed("backend", "medium", "Acme", "2026-09-01"))
}

func TestTemplateSeed_KnownFold(t *testing.T) {
	// h = h*31 + byte over "d-r-x-c", starting at zero.
	s := "d-r-x-c"
	var want uint32
	for i := 0; i < len(s); i++ {
		want = want*31 + uint32(s[i])
	}
	assert.Equal(t, want, TemplateSeed("r", "x", "c", "d"))
}

func TestSelectTemplate_IndexBySeed(t *testing.T) {
	candidates := []ProblemTemplate{
		{ID: 1}, {ID: 2}, {ID: 3},
	}

	picked := SelectTemplate(candidates, 7)
	assert.Equal(t, int64(2), picked.ID) // 7 % 3 == 1

	same := SelectTemplate(candidates, 7)
	assert.Equal(t, picked, same)
}

func TestSelectTemplate_SingleCandidate(t *testing.T) {
	only := []ProblemTemplate{{ID: 42}}
	assert.Equal(t, int64(42), SelectTemplate(only, 123456).ID)
}
