package server

import (
	"net/http"
)

// LinkGitHubRequest represents the request body for /integrations/github
type LinkGitHubRequest struct {
	Email       string `json:"email" validate:"required,email"`
	AccessToken string `json:"access_token" validate:"required,min=1"`
}

// handleLinkGitHub stores a repository-hosting credential for a user.
// Relinking replaces the previous credential.
func (s *Server) handleLinkGitHub(w http.ResponseWriter, r *http.Request) {
	var req LinkGitHubRequest
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

	if err := s.db.UpsertGitHubIntegration(ctx, user.ID, req.AccessToken); err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"email":  req.Email,
		"linked": true,
	})
}
