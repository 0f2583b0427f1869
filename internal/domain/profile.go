package domain

import "time"

// UserProfile is the extended per-user profile the dashboard keeps beside
// the account record: preferences, security posture, and a short activity
// trail.
type UserProfile struct {
	UserID      string             `json:"userId"`
	Bio         string             `json:"bio,omitempty"`
	Address     string             `json:"address,omitempty"`
	Preferences ProfilePreferences `json:"preferences"`
	Security    ProfileSecurity    `json:"security"`
	Activity    []ProfileActivity  `json:"activity,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ProfilePreferences holds display and notification settings.
type ProfilePreferences struct {
	Language           string `json:"language"`
	Currency           string `json:"currency"`
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
}

// ProfileSecurity holds the account's security posture flags.
type ProfileSecurity struct {
	TwoFactorEnabled   bool       `json:"twoFactorEnabled"`
	LastPasswordChange *time.Time `json:"lastPasswordChange,omitempty"`
}

// ProfileActivity is one entry in the profile's activity log.
type ProfileActivity struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultProfile returns the profile created the first time a user's
// profile is read.
func DefaultProfile(userID string, now time.Time) UserProfile {
	return UserProfile{
		UserID: userID,
		Preferences: ProfilePreferences{
			Language:           "en",
			Currency:           "ETB",
			EmailNotifications: true,
		},
		UpdatedAt: now,
	}
}
