package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/interview"
	"github.com/jonathan/career-vault/internal/llm"
	"github.com/jonathan/career-vault/internal/prompts"
)

// templateCandidates caps how many templates selection draws from.
const templateCandidates = 25

// InterviewStartRequest represents the request body for
// /workflows/interview/start
type InterviewStartRequest struct {
	Email      string `json:"email" validate:"required,email"`
	RoleType   string `json:"role_type" validate:"required,min=1"`
	Company    string `json:"company,omitempty"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// InterviewStartResponse represents the response for
// /workflows/interview/start
type InterviewStartResponse struct {
	SessionID        int64  `json:"session_id"`
	RoleType         string `json:"role_type"`
	Difficulty       string `json:"difficulty"`
	ProblemStatement string `json:"problem_statement"`
	Status           string `json:"status"`
}

// handleInterviewStart mints a practice session. Template choice is a
// deterministic function of (date, role, difficulty, company), so
// repeating the request on the same day replays the same template.
func (s *Server) handleInterviewStart(w http.ResponseWriter, r *http.Request) {
	var req InterviewStartRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
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

	rows, err := s.db.ListProblemTemplates(ctx, req.RoleType, templateCandidates)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if len(rows) == 0 {
		s.serviceError(w, &ErrNotFound{Resource: "problem templates", Key: req.RoleType})
		return
	}

	// Prefer templates at the requested difficulty; fall back to the
	// whole role pool when none match.
	candidates := templatesForDifficulty(rows, req.Difficulty)
	if len(candidates) == 0 {
		candidates = templatesFromRows(rows)
	}

	dateStr := time.Now().UTC().Format("2006-01-02")
	seed := interview.TemplateSeed(req.RoleType, req.Difficulty, req.Company, dateStr)
	template := interview.SelectTemplate(candidates, seed)

	companyClause := ""
	if req.Company != "" {
		companyClause = " at " + req.Company
	}
	prompt := prompts.Format(prompts.MustGet("interview.json", "problem"), map[string]string{
		"RoleType":      req.RoleType,
		"Difficulty":    req.Difficulty,
		"CompanyClause": companyClause,
		"TemplateText":  template.TemplateText,
	})
	statement, err := s.llm.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		s.serviceError(w, &ErrUpstream{Service: "llm", Err: err})
		return
	}

	rubricJSON, err := json.Marshal(template.Rubric)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	sessionID, err := s.db.InsertSession(ctx, db.NewSession{
		UserID:            user.ID,
		RoleType:          req.RoleType,
		Company:           req.Company,
		Difficulty:        req.Difficulty,
		ProblemTemplateID: template.ID,
		ProblemStatement:  statement,
		RubricJSON:        rubricJSON,
	})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, InterviewStartResponse{
		SessionID:        sessionID,
		RoleType:         req.RoleType,
		Difficulty:       req.Difficulty,
		ProblemStatement: statement,
		Status:           db.SessionAwaitingSubmission,
	})
}

// InterviewSubmitRequest represents the request body for
// /workflows/interview/submit
type InterviewSubmitRequest struct {
	SessionID int64  `json:"session_id" validate:"required,min=1"`
	Solution  string `json:"solution" validate:"required,min=1"`
}

// InterviewSubmitResponse represents the response for
// /workflows/interview/submit
type InterviewSubmitResponse struct {
	SessionID int64            `json:"session_id"`
	Scores    interview.Scores `json:"scores"`
	Feedback  string           `json:"feedback"`
	Status    string           `json:"status"`
}

// handleInterviewSubmit scores a solution against the session's rubric.
// Each session accepts exactly one submission.
func (s *Server) handleInterviewSubmit(w http.ResponseWriter, r *http.Request) {
	var req InterviewSubmitRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.serviceError(w, err)
		return
	}

	ctx := r.Context()
	session, err := s.db.GetSession(ctx, req.SessionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if session == nil {
		s.serviceError(w, &ErrNotFound{Resource: "session", Key: strconv.FormatInt(req.SessionID, 10)})
		return
	}
	if session.Status != db.SessionAwaitingSubmission {
		s.serviceError(w, &ErrState{Message: "session already scored"})
		return
	}

	weights := interview.DefaultWeights()
	if len(session.RubricJSON) > 0 {
		if err := json.Unmarshal(session.RubricJSON, &weights); err != nil {
			log.Printf("Malformed rubric on session %d, using defaults: %v", session.ID, err)
			weights = interview.DefaultWeights()
		}
	}
	scores := interview.ScoreSolution(req.Solution, weights)

	prompt := prompts.Format(prompts.MustGet("interview.json", "feedback"), map[string]string{
		"Problem":      session.ProblemStatement,
		"Solution":     req.Solution,
		"Correctness":  strconv.Itoa(scores.Correctness),
		"Clarity":      strconv.Itoa(scores.Clarity),
		"Completeness": strconv.Itoa(scores.Completeness),
		"Total":        strconv.Itoa(scores.Total),
	})
	feedback, err := s.llm.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		s.serviceError(w, &ErrUpstream{Service: "llm", Err: err})
		return
	}

	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	// The conditional update loses the race to a concurrent submission;
	// losing means someone else already scored it.
	updated, err := s.db.ScoreSession(ctx, session.ID, req.Solution, scoresJSON, feedback)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if !updated {
		s.serviceError(w, &ErrState{Message: "session already scored"})
		return
	}

	s.jsonResponse(w, http.StatusOK, InterviewSubmitResponse{
		SessionID: session.ID,
		Scores:    scores,
		Feedback:  feedback,
		Status:    db.SessionScored,
	})
}

// templatesForDifficulty converts rows at one difficulty into templates
func templatesForDifficulty(rows []db.ProblemTemplateRow, difficulty string) []interview.ProblemTemplate {
	templates := make([]interview.ProblemTemplate, 0, len(rows))
	for _, row := range rows {
		if row.Difficulty == difficulty {
			templates = append(templates, rowToTemplate(row))
		}
	}
	return templates
}

// templatesFromRows converts all rows into templates
func templatesFromRows(rows []db.ProblemTemplateRow) []interview.ProblemTemplate {
	templates := make([]interview.ProblemTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, rowToTemplate(row))
	}
	return templates
}

func rowToTemplate(row db.ProblemTemplateRow) interview.ProblemTemplate {
	template := interview.ProblemTemplate{
		ID:           row.ID,
		RoleType:     row.RoleType,
		Difficulty:   row.Difficulty,
		TemplateText: row.TemplateText,
		Rubric:       interview.DefaultWeights(),
	}
	if len(row.RubricJSON) > 0 {
		var weights interview.Weights
		if err := json.Unmarshal(row.RubricJSON, &weights); err == nil {
			template.Rubric = weights
		}
	}
	return template
}
