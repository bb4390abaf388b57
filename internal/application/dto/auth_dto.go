package dto

// TokenRequest body for POST /api/auth/token. The PIN is the single
// access credential of this single-user app.
type TokenRequest struct {
	PIN string `json:"pin"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
