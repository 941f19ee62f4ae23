package auth

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "tadipaar/pkg/domain-errors"

	"tadipaar/internal/scope"
)

type AuthServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s.service = NewService(
		NewInMemoryAccountStore(),
		NewTokenManager("test-signing-key", time.Hour),
		NewInMemoryRevocationList(),
		logger,
	)
	s.ctx = context.Background()
}

func (s *AuthServiceSuite) provision(in CreateAccountInput) *Account {
	account, err := s.service.CreateAccount(s.ctx, in)
	s.Require().NoError(err)
	return account
}

func (s *AuthServiceSuite) TestCreateAccount() {
	s.Run("provisions a station-scoped account", func() {
		account := s.provision(CreateAccountInput{
			Name:     "PSI Wakad",
			Email:    "psi.wakad@police.gov.in",
			Password: "correct horse",
			Role:     "PSI",
			Station:  "Wakad PS",
		})
		s.Equal(scope.RolePSI, account.Role)
		s.NotEmpty(account.PasswordHash)
	})

	s.Run("rejects unknown role", func() {
		_, err := s.service.CreateAccount(s.ctx, CreateAccountInput{
			Name: "X", Email: "x@example.com", Password: "longenough", Role: "WARDEN",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects scoped role without jurisdiction", func() {
		_, err := s.service.CreateAccount(s.ctx, CreateAccountInput{
			Name: "DCP", Email: "dcp@example.com", Password: "longenough", Role: "DCP",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects subject without identity number", func() {
		_, err := s.service.CreateAccount(s.ctx, CreateAccountInput{
			Name: "Subject", Email: "subject@example.com", Password: "longenough", Role: "CRIMINAL",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects duplicate email", func() {
		in := CreateAccountInput{Name: "CP", Email: "cp@police.gov.in", Password: "longenough", Role: "CP"}
		s.provision(in)
		_, err := s.service.CreateAccount(s.ctx, in)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *AuthServiceSuite) TestLogin() {
	s.provision(CreateAccountInput{
		Name: "DCP Zone-2", Email: "dcp.z2@police.gov.in", Password: "secret-pass",
		Role: "DCP", Zone: "Zone-2",
	})

	s.Run("valid credentials yield a token and actor", func() {
		result, err := s.service.Login(s.ctx, "dcp.z2@police.gov.in", "secret-pass")
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
		s.Equal(scope.RoleDCP, result.Actor.Role)
		s.Equal("Zone-2", result.Actor.Zone)
	})

	s.Run("wrong password is unauthorized", func() {
		_, err := s.service.Login(s.ctx, "dcp.z2@police.gov.in", "wrong")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("unknown email is indistinguishable from wrong password", func() {
		_, err := s.service.Login(s.ctx, "nobody@police.gov.in", "whatever")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("blank input is a bad request", func() {
		_, err := s.service.Login(s.ctx, "", "")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *AuthServiceSuite) TestTokenRoundTrip() {
	account := s.provision(CreateAccountInput{
		Name: "ACP Wakad", Email: "acp.wakad@police.gov.in", Password: "secret-pass",
		Role: "ACP", Station: "Wakad PS",
	})

	tokens := NewTokenManager("test-signing-key", time.Hour)
	token, err := tokens.Generate(account, time.Now())
	s.Require().NoError(err)

	claims, err := tokens.Validate(token)
	s.Require().NoError(err)
	s.Equal("ACP", claims.Role)
	s.Equal("Wakad PS", claims.Station)
	s.NotEmpty(claims.ID)

	s.Run("wrong key is rejected", func() {
		other := NewTokenManager("different-key", time.Hour)
		_, err := other.Validate(token)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("expired token is rejected", func() {
		shortLived := NewTokenManager("test-signing-key", -time.Minute)
		expired, err := shortLived.Generate(account, time.Now())
		s.Require().NoError(err)
		_, err = tokens.Validate(expired)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
