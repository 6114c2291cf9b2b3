package domain

// AuthMethod distinguishes how a request authenticated.
type AuthMethod string

const (
	AuthMethodSession AuthMethod = "session"
	AuthMethodToken   AuthMethod = "token"
)

// SessionIdentity is the fixed caller identity for session-authenticated
// requests; individual sessions are not distinguished.
const SessionIdentity = "session-user"
