package port

// SessionStorePort issues and resolves opaque admin session tokens. The
// token is carried in an HttpOnly cookie; deleting it invalidates the
// session immediately, which is why sessions are server-side state rather
// than signed tokens.
type SessionStorePort interface {
	// Create issues a new token bound to the admin id.
	Create(adminID int) (string, error)
	// Get resolves a token to the admin id; ok is false for unknown or
	// expired tokens.
	Get(token string) (adminID int, ok bool)
	// Delete invalidates the token. Deleting an unknown token is a no-op.
	Delete(token string)
}
