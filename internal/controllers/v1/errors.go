package v1

import (
	"errors"
	"net/http"

	"github.com/cavalaria/backend/internal/auth"
	"github.com/cavalaria/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrReferenceValueConflict) {
		return http.StatusConflict
	}

	if errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, auth.ErrTokenRevoked) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Document errors
var (
	errDocumentRegistrationMissing = errors.New("the vehicle registration must be set")
	errDocumentOrderNumberMissing  = errors.New("the order number must be set")
	errDocumentOrderDateMissing    = errors.New("the order date must be set")
	errDocumentArchiveDisabled     = errors.New("the document archive is not configured")
)

// Auth errors
var errCredentialsInvalid = errors.New("the username or password is incorrect")

// User errors
var errUserPasswordMissing = errors.New("the password must be set")
