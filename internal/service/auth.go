// Package service contains the business logic sitting between handlers
// and repositories: credential validation and token issuance, plus
// order event publishing.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/online-shop/internal/auth"
	"github.com/iliyamo/online-shop/internal/model"
	"github.com/iliyamo/online-shop/internal/repository"
)

// ErrInvalidCredentials is returned for every failed login. An unknown
// email and a wrong password are deliberately indistinguishable so the
// API cannot be used to probe which addresses are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CustomerStore is the slice of the customer repository the auth
// service needs.
type CustomerStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (model.Customer, error)
	GetByEmail(ctx context.Context, email string) (model.Customer, error)
}

// User is the redacted account summary returned alongside a token. It
// intentionally has no field for the password hash.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the result of a successful registration or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

// AuthService orchestrates registration and login against the customer
// store, the password hasher and the token issuer.
type AuthService struct {
	customers CustomerStore
	issuer    *auth.TokenIssuer
	cost      int

	// dummyHash is compared against when the email is unknown, so a
	// failed lookup costs the same as a failed password check.
	dummyHash string
}

func NewAuthService(customers CustomerStore, issuer *auth.TokenIssuer, cost int) (*AuthService, error) {
	dummy, err := auth.HashPassword("online-shop.dummy", cost)
	if err != nil {
		return nil, err
	}
	return &AuthService{customers: customers, issuer: issuer, cost: cost, dummyHash: dummy}, nil
}

// Register creates an account, hashes the password and returns a fresh
// session. A taken email surfaces as repository.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	hash, err := auth.HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}
	c, err := s.customers.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}
	return s.newSession(c)
}

// Login verifies the credentials and returns a fresh session, or
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	c, err := s.Validate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.newSession(*c)
}

// Validate checks an email/password pair without issuing a token. Both
// failure modes return ErrInvalidCredentials after a bcrypt comparison,
// keeping the latency profile of the two cases aligned.
func (s *AuthService) Validate(ctx context.Context, email, password string) (*model.Customer, error) {
	c, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.VerifyPassword(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(c.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &c, nil
}

func (s *AuthService) newSession(c model.Customer) (*Session, error) {
	tok, exp, err := s.issuer.Issue(c.ID, c.Email)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     tok,
		ExpiresAt: exp,
		User:      User{ID: c.ID, Name: c.Name, Email: c.Email},
	}, nil
}
