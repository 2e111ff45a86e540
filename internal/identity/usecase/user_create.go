package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type UserCreateInput struct {
	Name     string `validate:"required,min=2,max=100,alphaspace"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Role     string `validate:"required,oneof=admin user"`
}

type UserCreateOutput struct {
	User entity.User
}

func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*UserCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "users", "write"); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	pwHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.User{
		ID:       s.uid.Generate(),
		Name:     in.Name,
		Email:    in.Email,
		Password: string(pwHash),
		Role:     entity.UserRoleFromString(in.Role),
		Status:   entity.UserStatusActive,
	}
	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "user email already registered", "email", in.Email)
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserCreateOutput{User: user}, nil
}
