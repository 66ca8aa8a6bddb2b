package db

import "time"

// User is a vault account, keyed by email.
type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	CareerPhase string    `json:"career_phase,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CareerPhase is reference data describing one phase of a career.
type CareerPhase struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Objective is a phase-scoped goal surfaced during onboarding.
type Objective struct {
	ID            int64  `json:"id"`
	PhaseID       int64  `json:"phase_id"`
	ObjectiveText string `json:"objective_text"`
	Priority      int    `json:"priority"`
	Category      string `json:"category,omitempty"`
}

// Evidence is a persisted claim of accomplishment owned by a user.
type Evidence struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	SubmissionDate   time.Time `json:"submission_date"`
	IsShareable      bool      `json:"is_shareable"`
	ShareToken       string    `json:"share_token,omitempty"`
	CredibilityScore *int      `json:"credibility_score,omitempty"`
	SkillTags        []string  `json:"skill_tags"`
	CreatedAt        time.Time `json:"created_at"`
}

// GitHubIntegration links a user to a repository-hosting account via a
// stored bearer credential.
type GitHubIntegration struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	AccessToken string    `json:"-"` // never serialized
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompilerDraft is one staged output of the evidence-compilation pipeline,
// addressable by run identifier. DraftJSON holds the validated repo list.
type CompilerDraft struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	UserID    int64     `json:"user_id"`
	DraftJSON []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// CVGeneration is the audit copy of one CV-generation request.
type CVGeneration struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	TargetRole    string    `json:"target_role"`
	TargetCompany string    `json:"target_company,omitempty"`
	StructureJSON []byte    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Interview session lifecycle states.
const (
	SessionAwaitingSubmission = "awaiting_submission"
	SessionScored             = "scored"
)

// InterviewSession is one practice-problem session. It is created in
// awaiting_submission and transitions exactly once to scored.
type InterviewSession struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	RoleType          string    `json:"role_type"`
	Company           string    `json:"company,omitempty"`
	Difficulty        string    `json:"difficulty"`
	ProblemTemplateID int64     `json:"problem_template_id"`
	ProblemStatement  string    `json:"problem_statement"`
	RubricJSON        []byte    `json:"-"`
	SolutionText      string    `json:"solution_text,omitempty"`
	ScoresJSON        []byte    `json:"-"`
	FeedbackText      string    `json:"feedback_text,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProblemTemplateRow is an immutable problem template as stored.
type ProblemTemplateRow struct {
	ID           int64  `json:"id"`
	RoleType     string `json:"role_type"`
	Difficulty   string `json:"difficulty"`
	TemplateText string `json:"template_text"`
	RubricJSON   []byte `json:"-"`
}
