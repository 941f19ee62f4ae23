package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/scope"
)

// Service orchestrates login, logout, and account provisioning.
type Service struct {
	accounts    AccountStore
	tokens      *TokenManager
	revocations RevocationList
	logger      *slog.Logger
}

func NewService(accounts AccountStore, tokens *TokenManager, revocations RevocationList, logger *slog.Logger) *Service {
	return &Service{accounts: accounts, tokens: tokens, revocations: revocations, logger: logger}
}

// LoginResult is the token plus the profile the UI renders after login.
type LoginResult struct {
	Token string
	Actor *scope.Actor
	Name  string
}

// Login verifies credentials and issues a session token. Bad email and bad
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "email and password are required")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "account lookup failed")
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		s.logger.WarnContext(ctx, "failed login attempt",
			"email", email,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Generate(account, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "token generation failed")
	}

	return &LoginResult{Token: token, Actor: account.Actor(), Name: account.Name}, nil
}

// Logout revokes the presented session token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context) error {
	jti := requestcontext.TokenID(ctx)
	if jti == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "no session token")
	}
	if err := s.revocations.Revoke(ctx, jti, s.tokens.TTL()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "revocation failed")
	}
	return nil
}

// CreateAccountInput is the bootstrap provisioning request.
type CreateAccountInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Zone           string
	Station        string
	IdentityNumber string
}

// CreateAccount provisions a login account. Guarded by the admin token
// middleware, not by an actor capability: it runs before any actor exists.
func (s *Service) CreateAccount(ctx context.Context, in CreateAccountInput) (*Account, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "name and email are required")
	}
	if len(in.Password) < 8 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "password must be at least 8 characters")
	}
	role := scope.ParseRole(in.Role)
	if role == scope.RoleUnknown {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown role")
	}
	// Fail-closed invariant: scoped roles must carry their jurisdiction or
	// they will see nothing, which is never what provisioning intends.
	switch role {
	case scope.RoleDCP:
		if in.Zone == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "DCP account requires a zone")
		}
	case scope.RoleACP, scope.RoleStationAdmin, scope.RolePSI:
		if in.Station == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "station-scoped account requires a police station")
		}
	case scope.RoleCriminal:
		if in.IdentityNumber == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "subject account requires an identity number")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "password hashing failed")
	}

	account := &Account{
		ID:             id.NewAccountID(),
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           role,
		Zone:           in.Zone,
		Station:        in.Station,
		IdentityNumber: in.IdentityNumber,
		CreatedAt:      requestcontext.Now(ctx),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "account creation failed")
	}
	return account, nil
}
