package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/career-vault/internal/cvstructure"
	"github.com/jonathan/career-vault/internal/llm"
	"github.com/jonathan/career-vault/internal/prompts"
)

var errInvalidModelJSON = errors.New("model returned invalid JSON")

// GenerateCVRequest represents the request body for /workflows/cv/generate
type GenerateCVRequest struct {
	Email         string `json:"email" validate:"required,email"`
	TargetRole    string `json:"target_role" validate:"required,min=1"`
	TargetCompany string `json:"target_company,omitempty"`
}

// GenerateCVResponse represents the response for /workflows/cv/generate
type GenerateCVResponse struct {
	Structure cvstructure.Structure `json:"structure"`
	Tailored  json.RawMessage       `json:"tailored"`
}

// handleGenerateCV builds the deterministic CV outline from the vault and
// asks the model to tailor it for the target role
func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	var req GenerateCVRequest
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

	records, err := s.db.ListEvidenceByUser(ctx, user.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

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
	structure := cvstructure.NewStructure(req.TargetRole, req.TargetCompany, items)

	structureJSON, err := json.Marshal(structure)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	companyClause := ""
	if req.TargetCompany != "" {
		companyClause = " at " + req.TargetCompany
	}
	prompt := prompts.Format(prompts.MustGet("cv.json", "tailor"), map[string]string{
		"TargetRole":    req.TargetRole,
		"CompanyClause": companyClause,
		"Structure":     string(structureJSON),
	})

	tailored, err := s.llm.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		s.serviceError(w, &ErrUpstream{Service: "llm", Err: err})
		return
	}
	if !json.Valid([]byte(tailored)) {
		s.serviceError(w, &ErrUpstream{Service: "llm", Err: errInvalidModelJSON})
		return
	}

	if _, err := s.db.InsertCVGeneration(ctx, user.ID, req.TargetRole, req.TargetCompany, structureJSON); err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateCVResponse{
		Structure: structure,
		Tailored:  json.RawMessage(tailored),
	})
}
