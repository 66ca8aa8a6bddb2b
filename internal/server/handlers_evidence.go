package server

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/scoring"
)

// datePattern detects date mentions in free text: a 20xx year, a month
// abbreviation, or a numeric d/m/y form.
var datePattern = regexp.MustCompile(`(?i)20\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|\d{1,2}/\d{1,2}/\d{2,4}`)

// SubmitEvidenceRequest represents the request body for /evidence
type SubmitEvidenceRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Type          string   `json:"type" validate:"required,oneof=project credential achievement"`
	Title         string   `json:"title" validate:"required,min=1"`
	Description   string   `json:"description,omitempty"`
	Links         []string `json:"links,omitempty" validate:"dive,url"`
	HasPublicRepo bool     `json:"has_public_repo,omitempty"`
}

// handleSubmitEvidence scores and stores one piece of evidence
func (s *Server) handleSubmitEvidence(w http.ResponseWriter, r *http.Request) {
	var req SubmitEvidenceRequest
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

	text := req.Title + " " + req.Description
	score := scoring.Score(scoring.EvidenceInput{
		Type:          scoring.EvidenceType(req.Type),
		Title:         req.Title,
		Description:   req.Description,
		Links:         req.Links,
		HasPublicRepo: req.HasPublicRepo,
		HasDates:      datePattern.MatchString(text),
	})
	tags := scoring.ExtractTags(text)

	token, err := db.NewShareToken()
	if err != nil {
		s.serviceError(w, err)
		return
	}

	evidence, err := s.db.InsertEvidence(ctx, db.NewEvidence{
		UserID:           user.ID,
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		CredibilityScore: score,
		SkillTags:        tags,
		ShareToken:       token,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, evidence)
}

// VaultResponse represents the response for /evidence/vault
type VaultResponse struct {
	Email    string        `json:"email"`
	Evidence []db.Evidence `json:"evidence"`
}

// handleVault lists a user's evidence in submission order
func (s *Server) handleVault(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.serviceError(w, &ErrValidation{Field: "email", Message: "required"})
		return
	}

	ctx := r.Context()
	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if user == nil {
		s.serviceError(w, &ErrNotFound{Resource: "user", Key: email})
		return
	}

	evidence, err := s.db.ListEvidenceByUser(ctx, user.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, VaultResponse{Email: email, Evidence: evidence})
}

// ShareEvidenceRequest represents the request body for /evidence/{id}/share
type ShareEvidenceRequest struct {
	Shareable bool `json:"shareable"`
}

// ShareEvidenceResponse represents the response for /evidence/{id}/share
type ShareEvidenceResponse struct {
	Evidence *db.Evidence `json:"evidence"`
	ShareURL string       `json:"share_url,omitempty"`
}

// handleShareEvidence toggles whether an evidence record is shareable
func (s *Server) handleShareEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.serviceError(w, &ErrValidation{Field: "id", Message: "must be an integer"})
		return
	}

	var req ShareEvidenceRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}

	evidence, err := s.db.SetEvidenceShareable(r.Context(), id, req.Shareable)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if evidence == nil {
		s.serviceError(w, &ErrNotFound{Resource: "evidence", Key: strconv.FormatInt(id, 10)})
		return
	}

	resp := ShareEvidenceResponse{Evidence: evidence}
	if evidence.IsShareable {
		resp.ShareURL = "/evidence/shared/" + evidence.ShareToken
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSharedEvidence serves one shareable record by its public token.
// The owner's identity is not exposed.
func (s *Server) handleSharedEvidence(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		s.serviceError(w, &ErrValidation{Field: "token", Message: "required"})
		return
	}

	evidence, err := s.db.GetShareableEvidenceByToken(r.Context(), token)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if evidence == nil {
		s.serviceError(w, &ErrNotFound{Resource: "shared evidence", Key: token})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"type":              evidence.Type,
		"title":             evidence.Title,
		"description":       evidence.Description,
		"credibility_score": evidence.CredibilityScore,
		"skill_tags":        evidence.SkillTags,
		"submission_date":   evidence.SubmissionDate,
	})
}
