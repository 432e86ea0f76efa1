package ports

// TokenService issues and verifies the bearer tokens used on every
// authenticated request. Tokens are stateless: there is no server-side
// session and no revocation before natural expiry.
type TokenService interface {
	// Issue signs the given claims plus an expiry claim. The caller's map is
	// copied, never mutated.
	Issue(claims map[string]any) (string, error)
	// Verify checks signature and expiry and returns the embedded claims.
	// Any malformed, forged or expired token yields domain.ErrInvalidToken.
	Verify(token string) (map[string]any, error)
}
