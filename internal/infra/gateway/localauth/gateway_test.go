//go:build unit

package localauth_test

import (
	"context"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"gin-booking/internal/infra/docstore/memstore"
	"gin-booking/internal/infra/gateway/localauth"
	"gin-booking/internal/infra/repository"
	"gin-booking/internal/pkg/clock"
	"gin-booking/internal/pkg/jwt"
	"gin-booking/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
)

type sentMail struct {
	to   string
	link string
}

type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, to, link string) error {
	m.sent = append(m.sent, sentMail{to: to, link: link})
	return nil
}

func (m *recordingMailer) lastCode() string {
	u, _ := url.Parse(m.sent[len(m.sent)-1].link)
	return u.Query().Get("code")
}

type LocalGatewayTestSuite struct {
	suite.Suite
	ctx     context.Context
	mailer  *recordingMailer
	gateway *localauth.Gateway
}

func (s *LocalGatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
	logger := slog.New(slog.DiscardHandler)
	store := memstore.New(clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)))
	s.mailer = &recordingMailer{}
	s.gateway = localauth.New(
		repository.NewAccountRepository(store, logger),
		jwt.NewService("test-secret-key-for-unit-tests-only", time.Hour, 15*time.Minute),
		s.mailer,
		"http://localhost:3000/reset-password",
		logger,
	)
}

func TestLocalGatewaySuite(t *testing.T) {
	suite.Run(t, new(LocalGatewayTestSuite))
}

func (s *LocalGatewayTestSuite) register() string {
	id, err := s.gateway.CreateUser(s.ctx, "lan@example.com", "secret1", "Lan")
	s.Require().NoError(err)
	return id.UID
}

func (s *LocalGatewayTestSuite) requireAuthCode(err error, code string) {
	ae, ok := shared.AsAuthError(err)
	s.Require().True(ok, "expected auth error, got %v", err)
	s.Equal(code, ae.Code)
}

func (s *LocalGatewayTestSuite) TestCreateUser() {
	uid := s.register()
	s.NotEmpty(uid)

	s.Run("duplicate email", func() {
		_, err := s.gateway.CreateUser(s.ctx, "LAN@example.com", "secret2", "Other")
		s.requireAuthCode(err, shared.AuthCodeEmailExists)
	})

	s.Run("weak password", func() {
		_, err := s.gateway.CreateUser(s.ctx, "short@example.com", "123", "Short")
		s.requireAuthCode(err, shared.AuthCodeWeakPassword)
	})

	s.Run("delete releases the email", func() {
		s.Require().NoError(s.gateway.DeleteUser(s.ctx, uid))
		s.Require().NoError(s.gateway.DeleteUser(s.ctx, uid), "deleting twice is a no-op")

		_, err := s.gateway.SignIn(s.ctx, "lan@example.com", "secret1")
		s.requireAuthCode(err, shared.AuthCodeInvalidCredentials)

		again, err := s.gateway.CreateUser(s.ctx, "lan@example.com", "secret3", "Lan")
		s.Require().NoError(err)
		s.NotEqual(uid, again.UID)
	})
}

func (s *LocalGatewayTestSuite) TestSignInAndVerify() {
	uid := s.register()

	s.Run("wrong password", func() {
		_, err := s.gateway.SignIn(s.ctx, "lan@example.com", "nope-nope")
		s.requireAuthCode(err, shared.AuthCodeInvalidCredentials)
	})

	s.Run("unknown email reads as bad credentials", func() {
		_, err := s.gateway.SignIn(s.ctx, "ghost@example.com", "secret1")
		s.requireAuthCode(err, shared.AuthCodeInvalidCredentials)
	})

	s.Run("session token verifies until sign-out", func() {
		session, err := s.gateway.SignIn(s.ctx, "lan@example.com", "secret1")
		s.Require().NoError(err)
		s.Equal(uid, session.Identity.UID)
		s.Equal(time.Hour, session.ExpiresIn)

		id, err := s.gateway.VerifyToken(s.ctx, session.IDToken)
		s.Require().NoError(err)
		s.Equal("Lan", id.DisplayName)

		s.Require().NoError(s.gateway.SignOut(s.ctx, uid))
		_, err = s.gateway.VerifyToken(s.ctx, session.IDToken)
		s.ErrorIs(err, shared.ErrInvalidSession)
	})

	s.Run("display name change shows on the next verify", func() {
		session, err := s.gateway.SignIn(s.ctx, "lan@example.com", "secret1")
		s.Require().NoError(err)
		s.Require().NoError(s.gateway.UpdateDisplayName(s.ctx, uid, "Lan N"))

		id, err := s.gateway.VerifyToken(s.ctx, session.IDToken)
		s.Require().NoError(err)
		s.Equal("Lan N", id.DisplayName)
	})

	s.Run("garbage token", func() {
		_, err := s.gateway.VerifyToken(s.ctx, "not-a-token")
		s.ErrorIs(err, shared.ErrInvalidSession)
	})
}

func (s *LocalGatewayTestSuite) TestPasswordReset() {
	s.register()

	s.Run("unknown email", func() {
		err := s.gateway.SendPasswordResetEmail(s.ctx, "ghost@example.com")
		s.requireAuthCode(err, shared.AuthCodeEmailNotFound)
		s.Empty(s.mailer.sent)
	})

	s.Run("code resets the password once", func() {
		s.Require().NoError(s.gateway.SendPasswordResetEmail(s.ctx, "lan@example.com"))
		s.Require().Len(s.mailer.sent, 1)
		s.Equal("lan@example.com", s.mailer.sent[0].to)
		code := s.mailer.lastCode()
		s.NotEmpty(code)

		s.requireAuthCode(s.gateway.ConfirmPasswordReset(s.ctx, code, "123"), shared.AuthCodeWeakPassword)
		s.Require().NoError(s.gateway.ConfirmPasswordReset(s.ctx, code, "brand-new"))
		s.requireAuthCode(s.gateway.ConfirmPasswordReset(s.ctx, code, "another1"), shared.AuthCodeInvalidOobCode)

		_, err := s.gateway.SignIn(s.ctx, "lan@example.com", "secret1")
		s.requireAuthCode(err, shared.AuthCodeInvalidCredentials)
		_, err = s.gateway.SignIn(s.ctx, "lan@example.com", "brand-new")
		s.NoError(err)
	})

	s.Run("session tokens cannot reset passwords", func() {
		session, err := s.gateway.SignIn(s.ctx, "lan@example.com", "brand-new")
		s.Require().NoError(err)
		s.requireAuthCode(s.gateway.ConfirmPasswordReset(s.ctx, session.IDToken, "another1"), shared.AuthCodeInvalidOobCode)
	})
}
