package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/security"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type GetMe struct {
	users domain.Repository
}

func NewGetMe(users domain.Repository) *GetMe {
	return &GetMe{users: users}
}

func (uc *GetMe) Execute(ctx context.Context, caller access.Identity) (*models.User, error) {
	return enabledUser(ctx, uc.users, caller.UserID)
}

type UpdateMeInput struct {
	Name     *string `json:"name" validate:"omitnil,min=2,max=100"`
	Phone    *string `json:"phone" validate:"omitnil,max=20"`
	Password *string `json:"password" validate:"omitnil,min=6,max=72,password"`
}

type UpdateMe struct {
	users domain.Repository
}

func NewUpdateMe(users domain.Repository) *UpdateMe {
	return &UpdateMe{users: users}
}

func (uc *UpdateMe) Execute(ctx context.Context, caller access.Identity, in UpdateMeInput) (*models.User, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		in.Phone = &phone
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	u, err := enabledUser(ctx, uc.users, caller.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, err := security.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := uc.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}
