package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/linesmerrill/court-docket-api/config"
	"github.com/linesmerrill/court-docket-api/models"
)

// emptyNotice is returned instead of an empty list where clients expect a
// message
type emptyNotice struct {
	Message string `json:"message"`
}

// statusFor maps a docket error onto an HTTP status. Lookups answer a role
// mismatch with 403; for writes it is a rejected request like any other.
func statusFor(err error, lookup bool) int {
	var domainErr *models.Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}
	if len(domainErr.Invalid) > 0 {
		return http.StatusBadRequest
	}
	switch domainErr.Category {
	case models.CategoryNotFound:
		return http.StatusNotFound
	case models.CategoryRoleMismatch:
		if lookup {
			return http.StatusForbidden
		}
		return http.StatusBadRequest
	case models.CategoryInternalFault:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeError(message string, w http.ResponseWriter, err error) {
	config.ErrorStatus(message, statusFor(err, false), w, err)
}

func writeLookupError(message string, w http.ResponseWriter, err error) {
	config.ErrorStatus(message, statusFor(err, true), w, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, decodeError(err))
		return false
	}
	return true
}

// decodeError classifies a body that does not fit the request shape. A
// lawyer list of the wrong JSON type is a malformed reference list.
func decodeError(err error) *models.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Field, "lawyerIds") {
		return models.MalformedReference("lawyerIds", "expected a list of identifiers, got "+typeErr.Value)
	}
	return models.InvalidFormat("body", err.Error())
}
