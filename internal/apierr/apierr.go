// Package apierr is the error taxonomy of the HTTP API and its JSON rendering.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorillabuild/gorillabuild/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	CodeUnauthorized = "unauthorized"
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
)

// Error is what the API answers with when a request fails.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"-"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Message: "authentication required", Status: http.StatusUnauthorized}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// NotFound is used both for missing rows and rows owned by someone else.
func NotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found", Status: http.StatusNotFound}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func RateLimited(retryAfter time.Duration) *Error {
	return &Error{
		Code:    CodeRateLimited,
		Message: fmt.Sprintf("too many requests, retry after %.0f seconds", retryAfter.Seconds()),
		Status:  http.StatusTooManyRequests,
	}
}

func Internal() *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Status: http.StatusInternalServerError}
}

// Write renders err. Anything that is not an *Error is logged and hidden behind a 500.
func Write(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		log.Errorf("unexpected error: %s", err)
		apiErr = Internal()
	}
	pkg.WriteJSON(w, apiErr, apiErr.Status)
}
