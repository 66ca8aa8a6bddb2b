package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/career-vault/internal/compiler"
)

// CompilerStartRequest represents the request body for
// /workflows/evidence-compiler/start
type CompilerStartRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// handleCompilerStart runs the evidence compiler, streaming progress as
// newline-delimited JSON. Authorization failures are reported as plain
// JSON errors before the stream opens; once streaming has begun, failures
// become terminal stream records instead.
func (s *Server) handleCompilerStart(w http.ResponseWriter, r *http.Request) {
	var req CompilerStartRequest
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

	integration, err := s.db.GetGitHubIntegration(ctx, user.ID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if integration == nil {
		s.serviceError(w, &ErrValidation{Field: "email", Message: "no linked GitHub account"})
		return
	}

	stream, err := NewNDJSONWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	runner := &compiler.Runner{Repos: s.github, Text: s.llm, Drafts: s.db}
	if err := runner.Run(ctx, user.ID, integration.AccessToken, stream.Emit); err != nil {
		// The consumer disconnected mid-stream; nothing left to send.
		log.Printf("Compiler stream aborted for user %d: %v", user.ID, err)
	}
}

// handleCompilerDraft returns the staged draft for a run
func (s *Server) handleCompilerDraft(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("run_id")
	if runID == "" {
		s.serviceError(w, &ErrValidation{Field: "run_id", Message: "required"})
		return
	}

	draft, err := s.db.GetDraftByRunID(r.Context(), runID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if draft == nil {
		s.serviceError(w, &ErrNotFound{Resource: "draft", Key: runID})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":     draft.RunID,
		"user_id":    draft.UserID,
		"created_at": draft.CreatedAt,
		"draft":      json.RawMessage(draft.DraftJSON),
	})
}

// CompilerApproveRequest represents the request body for
// /workflows/evidence-compiler/approve
type CompilerApproveRequest struct {
	RunID    string                  `json:"run_id" validate:"required"`
	Selected []compiler.SelectedItem `json:"selected" validate:"required,min=1,dive"`
}

// handleCompilerApprove converts selected draft items into evidence
func (s *Server) handleCompilerApprove(w http.ResponseWriter, r *http.Request) {
	var req CompilerApproveRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}

	created, err := compiler.Approve(r.Context(), s.db, s.db, req.RunID, req.Selected)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"run_id":  req.RunID,
		"created": created,
	})
}
