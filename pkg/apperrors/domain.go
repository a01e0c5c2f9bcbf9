package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the enquiry domain.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation flags an operation the domain does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition flags a status change the transition table rejects.
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidTransition, domain, message, http.StatusConflict)
}

// ErrInvalidPagination flags out-of-bounds page/limit values.
func ErrInvalidPagination(message string) *AppError {
	return New(CodeValidationFailed, "pagination", message, http.StatusBadRequest)
}

// ErrInvalidAssignee flags an assignment to a user whose role does not fit
// the enquiry kind.
func ErrInvalidAssignee(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Static errors for frequent cases.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrUserBanned = New(
	CodeUserBanned,
	"auth",
	"Account is banned",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions for this operation",
	http.StatusForbidden,
)
