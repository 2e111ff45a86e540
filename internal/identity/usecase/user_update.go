package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type UserUpdateInput struct {
	ID     int64  `validate:"required,gt=0"`
	Name   string `validate:"required,min=2,max=100,alphaspace"`
	Role   string `validate:"required,oneof=admin user"`
	Status string `validate:"required,oneof=active inactive"`
}

func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) error {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "users", "write")
	if err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	// Administrators cannot demote or deactivate themselves.
	if clm.UserID == in.ID {
		slog.WarnContext(ctx, "admin attempted to update own account", "user_id", clm.UserID)
		return goerror.NewBusiness("Cannot update own account", goerror.CodeForbidden)
	}

	if err := s.repoDB.UpdateUser(ctx, entity.UpdateUser{
		ID:     in.ID,
		Name:   in.Name,
		Role:   entity.UserRoleFromString(in.Role),
		Status: entity.UserStatusFromString(in.Status),
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update user", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
