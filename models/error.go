package models

import (
	"fmt"
	"strings"
)

// ErrorCategory is the machine readable class of a rejected request
type ErrorCategory string

// Error categories
const (
	CategoryMissingField       ErrorCategory = "MissingField"
	CategoryInvalidFormat      ErrorCategory = "InvalidFormat"
	CategoryWeakPassword       ErrorCategory = "WeakPassword"
	CategoryDuplicateUnique    ErrorCategory = "DuplicateUnique"
	CategoryNotFound           ErrorCategory = "NotFound"
	CategoryRoleMismatch       ErrorCategory = "RoleMismatch"
	CategoryInvalidState       ErrorCategory = "InvalidState"
	CategoryMalformedReference ErrorCategory = "MalformedReference"
	CategoryInternalFault      ErrorCategory = "InternalFault"
)

// Reasons attached to an InvalidReference
const (
	ReasonMalformed = "malformed"
	ReasonNotFound  = "not found"
	ReasonWrongRole = "wrong role"
)

// InvalidReference describes one rejected entry of an identifier list
type InvalidReference struct {
	Index  int         `json:"index"`
	Value  interface{} `json:"value"`
	Reason string      `json:"reason"`
}

// Error is a rejected mutation or lookup
type Error struct {
	Category ErrorCategory      `json:"category"`
	Detail   string             `json:"detail"`
	Invalid  []InvalidReference `json:"invalid,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Detail)
}

// MissingField returns a MissingField error naming every absent field
func MissingField(fields ...string) *Error {
	return &Error{Category: CategoryMissingField, Detail: "missing required field(s): " + strings.Join(fields, ", ")}
}

// InvalidFormat returns an InvalidFormat error for field
func InvalidFormat(field, detail string) *Error {
	return &Error{Category: CategoryInvalidFormat, Detail: fmt.Sprintf("invalid %s: %s", field, detail)}
}

// WeakPassword returns a WeakPassword error
func WeakPassword() *Error {
	return &Error{
		Category: CategoryWeakPassword,
		Detail:   "password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a digit and a special character",
	}
}

// DuplicateUnique returns a DuplicateUnique error for field
func DuplicateUnique(field, value string) *Error {
	return &Error{Category: CategoryDuplicateUnique, Detail: fmt.Sprintf("%s %q is already in use", field, value)}
}

// NotFound returns a NotFound error for the given kind of entity
func NotFound(kind, id string) *Error {
	return &Error{Category: CategoryNotFound, Detail: fmt.Sprintf("%s %q not found", kind, id)}
}

// RoleMismatch returns a RoleMismatch error for a user lacking role
func RoleMismatch(id string, want, got Role) *Error {
	return &Error{Category: CategoryRoleMismatch, Detail: fmt.Sprintf("user %q has role %s, expected %s", id, got, want)}
}

// InvalidState returns an InvalidState error
func InvalidState(detail string) *Error {
	return &Error{Category: CategoryInvalidState, Detail: detail}
}

// InvalidReferences returns the error for a rejected identifier list. The
// category is the most severe reason present: malformed, then not found,
// then wrong role.
func InvalidReferences(field string, invalid []InvalidReference) *Error {
	category := CategoryRoleMismatch
	for _, ref := range invalid {
		if ref.Reason == ReasonMalformed {
			category = CategoryMalformedReference
			break
		}
		if ref.Reason == ReasonNotFound {
			category = CategoryNotFound
		}
	}
	detail := fmt.Sprintf("%d invalid entries in %s", len(invalid), field)
	if len(invalid) == 1 {
		detail = "1 invalid entry in " + field
	}
	return &Error{
		Category: category,
		Detail:   detail,
		Invalid:  invalid,
	}
}

// MalformedReference returns a MalformedReference error for an identifier
// list that could not be read at all
func MalformedReference(field, detail string) *Error {
	return &Error{Category: CategoryMalformedReference, Detail: fmt.Sprintf("malformed %s: %s", field, detail)}
}

// InternalFault returns an InternalFault error
func InternalFault(detail string) *Error {
	return &Error{Category: CategoryInternalFault, Detail: detail}
}

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError `json:"response"`
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message  string             `json:"message"`
	Category ErrorCategory      `json:"category,omitempty"`
	Detail   string             `json:"detail,omitempty"`
	Invalid  []InvalidReference `json:"invalid,omitempty"`
}
