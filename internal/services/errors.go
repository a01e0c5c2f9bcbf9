package services

import (
	"errors"

	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"
)

// asAppError maps a validation failure or repository error into an AppError.
// Unknown errors become 500s.
func asAppError(err error, notFoundSentinel error) error {
	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		return apperrors.ValidationError(ve.Errors)
	}
	if notFoundSentinel != nil && errors.Is(err, notFoundSentinel) {
		return apperrors.ErrNotFound(err)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(err)
}
