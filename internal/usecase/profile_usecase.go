package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/esmael/chapapay/internal/domain"
)

// maxProfileActivity caps the profile activity trail.
const maxProfileActivity = 20

// ProfileUseCase manages the extended per-user profile.
type ProfileUseCase struct {
	profiles ProfileRepository
	latency  *Latency
	logger   zerolog.Logger
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(profiles ProfileRepository, latency *Latency, logger zerolog.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profiles: profiles,
		latency:  latency,
		logger:   logger.With().Str("component", "profiles").Logger(),
	}
}

// GetProfile returns the user's profile, materializing the default one on
// first read.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	if err := uc.latency.Wait(ctx); err != nil {
		return domain.UserProfile{}, err
	}

	profile, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if profile == nil {
		return domain.DefaultProfile(userID, time.Now().UTC()), nil
	}
	return *profile, nil
}

// UpdateProfileInput is a merge-patch over a user profile.
type UpdateProfileInput struct {
	Bio                *string
	Address            *string
	Language           *string
	Currency           *string
	EmailNotifications *bool
	SMSNotifications   *bool
	TwoFactorEnabled   *bool
}

// UpdateProfile merge-patches the profile and records the change in the
// activity trail.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (domain.UserProfile, error) {
	profile, err := uc.GetProfile(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Language != nil {
		profile.Preferences.Language = *input.Language
	}
	if input.Currency != nil {
		profile.Preferences.Currency = *input.Currency
	}
	if input.EmailNotifications != nil {
		profile.Preferences.EmailNotifications = *input.EmailNotifications
	}
	if input.SMSNotifications != nil {
		profile.Preferences.SMSNotifications = *input.SMSNotifications
	}
	if input.TwoFactorEnabled != nil {
		profile.Security.TwoFactorEnabled = *input.TwoFactorEnabled
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now
	profile.Activity = append([]domain.ProfileActivity{{
		Action:    "profile_updated",
		Timestamp: now,
	}}, profile.Activity...)
	if len(profile.Activity) > maxProfileActivity {
		profile.Activity = profile.Activity[:maxProfileActivity]
	}

	if err := uc.profiles.Save(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}

	uc.logger.Info().Str("user_id", userID).Msg("profile updated")
	return profile, nil
}
