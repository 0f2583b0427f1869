// Package kv implements the platform repositories as JSON snapshots in a
// storage.Store. The keys below are a compatibility contract with the
// dashboard's storage layout and must not change.
package kv

const (
	keyUsers        = "chapa_users"
	keyAdmins       = "chapa_admins"
	keyTransactions = "chapa_transactions"
	keySystemStats  = "chapa_system_stats"
	keyAuthSession  = "chapa-auth-storage"
	keyUserProfiles = "chapa-user-profiles-storage"

	userLogPrefix = "chapa_user_"
)

// UserLogKey returns the storage key of a user's created-transaction log.
func UserLogKey(userID string) string {
	return userLogPrefix + userID
}
