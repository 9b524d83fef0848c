// Package auth provides password hashing and signed session tokens. It does
// no I/O; callers resolve users against the store themselves.
package auth

import (
	"errors"
	"time"

	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer          = "social-media-api"
	tokenTTL        = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrNoSecret indicates the server was started without JWT_SECRET.
	ErrNoSecret = errors.New("jwt secret is not configured")
	// ErrInvalidToken covers bad signatures, wrong issuers and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService issues and verifies HMAC-signed session tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService. Fails with ErrNoSecret when the
// signing secret is empty.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue signs a 24h session token carrying the user's id and username.
func (s *TokenService) Issue(userID uint, username string) (string, error) {
	return s.sign(userID, username, tokenTTL)
}

// IssueRefresh signs a longer-lived (7d) token with the same claims.
func (s *TokenService) IssueRefresh(userID uint, username string) (string, error) {
	return s.sign(userID, username, refreshTokenTTL)
}

func (s *TokenService) sign(userID uint, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature, issuer and expiry of a token and returns
// its claims. Any mismatch yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(issuer, true) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
