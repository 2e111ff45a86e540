package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type ProfileOutput struct {
	User entity.User
}

func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "profile", "read")
	if err != nil {
		return nil, err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID, false)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "authenticated user no longer exists", "user_id", clm.UserID)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{User: *user}, nil
}

type ProfileUpdateInput struct {
	Name string `validate:"required,min=2,max=100,alphaspace"`
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "profile", "write")
	if err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateUserName(ctx, clm.UserID, in.Name); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update user name", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
