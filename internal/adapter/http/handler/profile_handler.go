package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/esmael/chapapay/internal/adapter/http/dto"
	"github.com/esmael/chapapay/internal/adapter/http/middleware"
	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/usecase"
)

// ProfileService defines the behavior needed by ProfileHandler.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, input usecase.UpdateProfileInput) (domain.UserProfile, error)
}

// ProfileHandler serves the authenticated account's extended profile.
type ProfileHandler struct {
	profileUC ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUC ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// Get returns the account's profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())

	profile, err := h.profileUC.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get profile", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileFromDomain(profile))
}

// Update merge-patches the account's profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.AccountIDFrom(r.Context())

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	profile, err := h.profileUC.UpdateProfile(r.Context(), userID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update profile", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileFromDomain(profile))
}
