package user

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/mail"
	"github.com/BruksfildServices01/barber-booking/internal/security"
	"github.com/BruksfildServices01/barber-booking/internal/token"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ===============================
// Forgot
// ===============================

type ForgotPassword struct {
	users    domain.Repository
	signer   *token.Signer
	mailer   mail.Mailer
	resetURL string
	log      *zap.Logger
}

func NewForgotPassword(
	users domain.Repository,
	signer *token.Signer,
	mailer mail.Mailer,
	resetURL string,
	log *zap.Logger,
) *ForgotPassword {
	return &ForgotPassword{
		users:    users,
		signer:   signer,
		mailer:   mailer,
		resetURL: resetURL,
		log:      log.With(zap.String("usecase", "forgot_password")),
	}
}

// Execute never reveals whether the address is registered: lookup and delivery
// failures are logged and swallowed.
func (uc *ForgotPassword) Execute(ctx context.Context, email string) error {
	u, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Warn("lookup failed", zap.Error(err))
		}
		return nil
	}
	if u.Status != lifecycle.StatusEnabled {
		return nil
	}

	tok, err := uc.signer.Sign(u.ID, token.UsageResetPassword)
	if err != nil {
		return fmt.Errorf("sign reset token: %w", err)
	}

	msg := mail.Message{
		To:      u.Email,
		Subject: "Password reset",
		Body: fmt.Sprintf(
			"Hello %s,\n\nUse the link below to choose a new password:\n\n%s\n\nIf you did not ask for this, ignore this email.\n",
			u.Name, uc.link(tok),
		),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.log.Warn("reset mail not delivered", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
	return nil
}

func (uc *ForgotPassword) link(tok string) string {
	sep := "?"
	if strings.Contains(uc.resetURL, "?") {
		sep = "&"
	}
	return uc.resetURL + sep + "token=" + url.QueryEscape(tok)
}

// ===============================
// Reset
// ===============================

type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72,password"`
}

type ResetPassword struct {
	users  domain.Repository
	signer *token.Signer
	tokens cache.TokenStore
	log    *zap.Logger
}

func NewResetPassword(
	users domain.Repository,
	signer *token.Signer,
	tokens cache.TokenStore,
	log *zap.Logger,
) *ResetPassword {
	return &ResetPassword{
		users:  users,
		signer: signer,
		tokens: tokens,
		log:    log.With(zap.String("usecase", "reset_password")),
	}
}

func (uc *ResetPassword) Execute(ctx context.Context, in ResetPasswordInput) error {
	if err := validators.Struct(in); err != nil {
		return err
	}

	claims, err := uc.signer.Verify(in.Token, token.UsageResetPassword)
	if err != nil {
		return errInvalidToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return errInvalidToken
	}

	u, err := enabledUser(ctx, uc.users, userID)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	fresh, err := uc.tokens.Consume(ctx, claims.ID, ttl)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if !fresh {
		return errInvalidToken
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := uc.users.Save(ctx, u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	uc.log.Info("password reset", zap.String("user_id", u.ID.String()))
	return nil
}
