package domain

// SessionState is the state of the dashboard session machine.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
	SessionError          SessionState = "error"
)

// Session is the persisted snapshot of the current session. Only the
// authenticated account and the flag survive restarts; transient machine
// state does not.
type Session struct {
	User            *Account `json:"user"`
	IsAuthenticated bool     `json:"isAuthenticated"`
}
