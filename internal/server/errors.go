// Package server provides the HTTP REST API for the career vault.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-vault/internal/compiler"
	"github.com/jonathan/career-vault/internal/db"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a referenced resource does not exist
type ErrNotFound struct {
	Resource string
	Key      string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// ErrState indicates the resource exists but is in the wrong lifecycle
// state for the requested operation
type ErrState struct {
	Message string
}

func (e *ErrState) Error() string {
	return e.Message
}

// ErrUpstream indicates a dependency call failed
type ErrUpstream struct {
	Service string
	Err     error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, db.ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, compiler.ErrDraftNotFound) {
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrState:
		return http.StatusConflict
	case *ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
