package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDeactivated),
		errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPrivilegeEscalation),
		errors.Is(err, domain.ErrRoleNotPermitted),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrNegativeFee):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
