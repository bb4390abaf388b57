// Package auth implements the single-user access control of the app:
// the mobile client exchanges the configured access PIN for a bearer
// token. There are no accounts — one business, one principal.
package auth

import (
	"github.com/Vishalsnw/Vyap/internal/application/dto"
	"github.com/Vishalsnw/Vyap/internal/domain"
	"github.com/Vishalsnw/Vyap/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verifies the access PIN and issues tokens.
type AuthUseCase struct {
	pinHash string // bcrypt hash of the access PIN; empty disables auth
	jwtCfg  JWTConfig
}

// NewAuthUseCase builds the use case. pinHash is the bcrypt hash of the
// configured PIN (AUTH_PIN_HASH).
func NewAuthUseCase(pinHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{pinHash: pinHash, jwtCfg: jwtCfg}
}

// Token checks the PIN against the configured hash and returns a signed
// bearer token. Wrong PIN yields domain.ErrUnauthorized.
func (uc *AuthUseCase) Token(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if uc.pinHash == "" || in.PIN == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.pinHash), []byte(in.PIN)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
