package domain

import "github.com/google/uuid"

// Credential is one way a caller can present authorization on a protected
// route. Browser clients carry a SessionCredential via the session cookie;
// cookie-less clients (pages opened from the local filesystem) carry a
// TokenCredential in the Authorization header. Both variants feed the same
// predicate so the two channels cannot drift apart.
type Credential interface {
	isCredential()
}

// SessionCredential identifies a server-side session by its cookie ID.
type SessionCredential struct {
	SessionID uuid.UUID
}

// TokenCredential carries a bearer token value. The accepted value is a
// single static shared secret, identical for every authenticated session.
type TokenCredential struct {
	Token string
}

func (SessionCredential) isCredential() {}
func (TokenCredential) isCredential()   {}
