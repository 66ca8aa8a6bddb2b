package server

import (
	"net/http"

	"github.com/jonathan/career-vault/internal/classification"
	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/llm"
	"github.com/jonathan/career-vault/internal/prompts"
)

// objectivesPerPhase caps how many starter objectives onboarding returns.
const objectivesPerPhase = 2

// ClassifyRequest represents the request body for /onboarding/classify
type ClassifyRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	YearsExperience float64 `json:"years_experience" validate:"min=0"`
	DegreeType      string  `json:"degree_type,omitempty"`
	InternshipCount int     `json:"internship_count,omitempty" validate:"min=0"`
}

// ClassifyResponse represents the response for /onboarding/classify
type ClassifyResponse struct {
	Phase      db.CareerPhase `json:"phase"`
	Objectives []db.Objective `json:"objectives"`
}

// handleClassify assigns a career phase from onboarding facts and returns
// the phase's starter objectives
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}

	phase := classification.Classify(classification.Input{
		YearsExperience: req.YearsExperience,
		DegreeType:      req.DegreeType,
		InternshipCount: req.InternshipCount,
	})

	ctx := r.Context()
	if _, err := s.db.UpsertUserPhase(ctx, req.Email, string(phase)); err != nil {
		s.serviceError(w, err)
		return
	}

	phaseRow, err := s.db.GetPhaseBySlug(ctx, string(phase))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if phaseRow == nil {
		s.serviceError(w, &ErrNotFound{Resource: "career phase", Key: string(phase)})
		return
	}

	objectives, err := s.db.ListObjectivesByPhase(ctx, phaseRow.ID, objectivesPerPhase)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ClassifyResponse{
		Phase:      *phaseRow,
		Objectives: objectives,
	})
}

// GreetingRequest represents the request body for /onboarding/greeting
type GreetingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// GreetingResponse represents the response for /onboarding/greeting
type GreetingResponse struct {
	Phase    string `json:"phase"`
	Greeting string `json:"greeting"`
}

// handleGreeting generates a personalized welcome for an onboarded user
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	var req GreetingRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}

	ctx := r.Context()
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if user == nil {
		s.serviceError(w, &ErrNotFound{Resource: "user", Key: req.Email})
		return
	}

	phaseName := user.CareerPhase
	if phaseRow, err := s.db.GetPhaseBySlug(ctx, user.CareerPhase); err == nil && phaseRow != nil {
		phaseName = phaseRow.Name
	}

	prompt := prompts.Format(prompts.MustGet("onboarding.json", "greeting"), map[string]string{
		"PhaseName": phaseName,
	})
	greeting, err := s.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.serviceError(w, &ErrUpstream{Service: "llm", Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, GreetingResponse{
		Phase:    user.CareerPhase,
		Greeting: greeting,
	})
}
