package services

import (
	"fmt"

	"edubridge_backend/internal/services/dto"
	"edubridge_backend/pkg/apperrors"
)

// validatePagination rejects out-of-range values instead of clamping them,
// so a client asking for limit=500 learns about the cap instead of silently
// getting 50 rows.
func validatePagination(p dto.PaginationQuery) error {
	if p.Page < 1 {
		return apperrors.ErrInvalidPagination(
			fmt.Sprintf("page must be >= 1, got %d", p.Page),
		)
	}
	if p.Limit < 1 || p.Limit > dto.MaxLimit {
		return apperrors.ErrInvalidPagination(
			fmt.Sprintf("limit must be between 1 and %d, got %d", dto.MaxLimit, p.Limit),
		)
	}
	return nil
}

// ListScope restricts list and read operations to the caller's own
// assignments. Handlers fill it from the authenticated role; an empty scope
// means unrestricted (admin).
type ListScope struct {
	AssignedToID string
	AgentID      string
}

func (s ListScope) restricted() bool {
	return s.AssignedToID != "" || s.AgentID != ""
}
