package worldoftea

import (
	"fmt"
	"net/http"
	"strings"
)

// An ErrorResponder writes itself as an HTTP response. It returns false if it
// didn't write anything, leaving the caller to respond.
type ErrorResponder interface {
	RespondError(w http.ResponseWriter, r *http.Request) bool
}

type errorBody struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ValidationError responds with bad request status code, listing the fields that
// are missing or invalid.
type ValidationError struct {
	Fields []string
}

func Invalid(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ValidationError: invalid %v", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) RespondError(w http.ResponseWriter, r *http.Request) bool {
	respondJSON(w, http.StatusBadRequest, &errorBody{
		Message: strings.Join(e.Fields, ", ") + " required",
		Fields:  e.Fields,
	})
	return true
}

// TooLargeError responds with request entity too large status code.
type TooLargeError struct {
	Limit int64
}

func TooLarge(limit int64) *TooLargeError {
	return &TooLargeError{Limit: limit}
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("TooLargeError: body over %d bytes", e.Limit)
}

func (e *TooLargeError) RespondError(w http.ResponseWriter, r *http.Request) bool {
	respondJSON(w, http.StatusRequestEntityTooLarge, &errorBody{Message: "Request body too large"})
	return true
}

// ConflictError is returned when a uniqueness constraint was violated in a way the
// store could not resolve. With atomic upserts this should not happen.
type ConflictError struct {
	Err error
}

func Conflict(err error) *ConflictError {
	return &ConflictError{Err: err}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ConflictError: %v", e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func (e *ConflictError) RespondError(w http.ResponseWriter, r *http.Request) bool {
	respondJSON(w, http.StatusConflict, &errorBody{Message: "Duplicate record detected"})
	return true
}

// StorageError wraps a failure of the backing store.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("StorageError: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) RespondError(w http.ResponseWriter, r *http.Request) bool {
	respondJSON(w, http.StatusInternalServerError, &errorBody{Message: "Storage failure"})
	return true
}

// NotFoundError responds with not found status code.
type NotFoundError struct {
	Kind string
	Key  string
}

func NotFound(kind string, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("NotFoundError: %s %q", e.Kind, e.Key)
}

func (e *NotFoundError) RespondError(w http.ResponseWriter, r *http.Request) bool {
	respondJSON(w, http.StatusNotFound, &errorBody{Message: fmt.Sprintf("Unknown %s %q", e.Kind, e.Key)})
	return true
}
