package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/security"
	"github.com/BruksfildServices01/barber-booking/internal/token"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72,password"`
	Phone    string `json:"phone" validate:"max=20"`
}

type RegisterUser struct {
	users       domain.Repository
	signer      *token.Signer
	checkDomain validators.DomainChecker
	log         *zap.Logger
}

func NewRegisterUser(
	users domain.Repository,
	signer *token.Signer,
	checkDomain validators.DomainChecker,
	log *zap.Logger,
) *RegisterUser {
	if checkDomain == nil {
		checkDomain = validators.AnyDomain
	}
	return &RegisterUser{
		users:       users,
		signer:      signer,
		checkDomain: checkDomain,
		log:         log.With(zap.String("usecase", "register_user")),
	}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if !uc.checkDomain(ctx, in.Email) {
		return nil, httperr.BadRequest("invalid_email_domain", "email domain does not accept mail")
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Status:       lifecycle.StatusEnabled,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.BadRequest("email_taken", "email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := uc.signer.Sign(u.ID, token.UsageClient)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	uc.log.Info("user registered", zap.String("user_id", u.ID.String()))
	return &AuthResult{User: u, Token: tok}, nil
}
