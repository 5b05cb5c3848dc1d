package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signatures, unexpected signing
	// algorithms and malformed or incomplete claims.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a well-formed, correctly signed
	// token whose expiry has passed.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload carried by an access token: the customer ID in
// the standard subject claim plus the email. Claims are signed, not
// encrypted, so nothing secret may be stored here.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenIssuer signs and verifies HS256 access tokens. The secret and
// TTL are fixed at construction; the process loads them once from
// configuration and never rotates them at runtime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject and email and returns the
// serialized token together with its expiry time.
func (i *TokenIssuer) Issue(subject, email string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(i.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: email,
	})
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify parses and validates a serialized token. Expiry is checked
// strictly against the wall clock with no leeway. A valid-but-expired
// token yields ErrExpiredToken; every other failure, including a token
// without a subject, yields ErrInvalidToken.
func (i *TokenIssuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
