package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-vault/internal/db"
	"github.com/jonathan/career-vault/internal/github"
	"github.com/jonathan/career-vault/internal/llm"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llm        llm.Client
	github     *github.Client
	validate   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	GeminiAPIKey  string
	GitHubBaseURL string
	ProbeTimeout  time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := &Server{
		db:       database,
		llm:      llmClient,
		validate: validator.New(),
		github: github.NewClient(github.Config{
			BaseURL:      cfg.GitHubBaseURL,
			ProbeTimeout: cfg.ProbeTimeout,
		}),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for compiler streams
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires the request multiplexer
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Onboarding endpoints
	mux.HandleFunc("POST /onboarding/classify", s.handleClassify)
	mux.HandleFunc("POST /onboarding/greeting", s.handleGreeting)

	// Evidence vault endpoints
	mux.HandleFunc("POST /evidence", s.handleSubmitEvidence)
	mux.HandleFunc("GET /evidence/vault", s.handleVault)
	mux.HandleFunc("PATCH /evidence/{id}/share", s.handleShareEvidence)
	mux.HandleFunc("GET /evidence/shared/{token}", s.handleSharedEvidence)

	// Integration endpoints
	mux.HandleFunc("POST /integrations/github", s.handleLinkGitHub)

	// Workflow endpoints
	mux.HandleFunc("POST /workflows/evidence-compiler/start", s.handleCompilerStart)
	mux.HandleFunc("GET /workflows/evidence-compiler/drafts/{run_id}", s.handleCompilerDraft)
	mux.HandleFunc("POST /workflows/evidence-compiler/approve", s.handleCompilerApprove)
	mux.HandleFunc("POST /workflows/cv/generate", s.handleGenerateCV)
	mux.HandleFunc("POST /workflows/interview/start", s.handleInterviewStart)
	mux.HandleFunc("POST /workflows/interview/submit", s.handleInterviewSubmit)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.llm.Close(); err != nil {
		log.Printf("Error closing LLM client: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps a service-layer error onto the response
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeAndValidate decodes the request body and checks validation tags.
// Returned errors are ready for serviceError.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts a validator error into the typed form, keeping
// the first failing field for the message
func validationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid"}
}
