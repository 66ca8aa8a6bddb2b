package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server without backing services. Unit tests here
// exercise request parsing and validation, which reject before any
// database or model call; the full flows are covered by the integration
// tests and the domain packages' own suites.
func newTestServer() *Server {
	return &Server{validate: validator.New()}
}

func postJSON(t *testing.T, s *Server, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleClassify_InvalidBody(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleClassify, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "invalid JSON")
}

func TestHandleClassify_MissingEmail(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleClassify, `{"years_experience": 4}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "Email")
}

func TestHandleClassify_NegativeYears(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleClassify, `{"email": "a@b.co", "years_experience": -1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGreeting_InvalidEmail(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleGreeting, `{"email": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitEvidence_UnknownType(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleSubmitEvidence, `{"email": "a@b.co", "type": "award", "title": "x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "Type")
}

func TestHandleSubmitEvidence_MissingTitle(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleSubmitEvidence, `{"email": "a@b.co", "type": "project"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitEvidence_BadLink(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleSubmitEvidence, `{"email": "a@b.co", "type": "project", "title": "x", "links": ["not a url"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVault_MissingEmail(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/evidence/vault", nil)
	w := httptest.NewRecorder()

	s.handleVault(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "email")
}

func TestHandleShareEvidence_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPatch, "/evidence/abc/share", bytes.NewBufferString(`{"shareable": true}`))
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	s.handleShareEvidence(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLinkGitHub_MissingToken(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleLinkGitHub, `{"email": "a@b.co"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "AccessToken")
}

func TestHandleCompilerStart_MissingEmail(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleCompilerStart, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompilerDraft_MissingRunID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/workflows/evidence-compiler/drafts/", nil)
	req.SetPathValue("run_id", "")
	w := httptest.NewRecorder()

	s.handleCompilerDraft(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompilerApprove_EmptySelection(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleCompilerApprove, `{"run_id": "r1", "selected": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompilerApprove_ScoreOutOfRange(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleCompilerApprove, `{"run_id": "r1", "selected": [{"name": "me/x", "credibilityBaseScore": 150}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerateCV_MissingRole(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleGenerateCV, `{"email": "a@b.co"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "TargetRole")
}

func TestHandleInterviewStart_BadDifficulty(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleInterviewStart, `{"email": "a@b.co", "role_type": "backend", "difficulty": "impossible"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleInterviewSubmit_MissingSolution(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleInterviewSubmit, `{"session_id": 3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutesRegisterWithoutConflict(t *testing.T) {
	s := newTestServer()

	assert.NotPanics(t, func() { s.routes() })
}
