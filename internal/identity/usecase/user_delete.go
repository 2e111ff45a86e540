package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type UserDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "users", "write")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if clm.UserID == in.ID {
		slog.WarnContext(ctx, "admin attempted to delete own account", "user_id", clm.UserID)
		return goerror.NewBusiness("Cannot delete own account", goerror.CodeForbidden)
	}

	if err := s.repoDB.MarkUserDeleted(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark user deleted", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	// Deleted accounts fail the user lookup before any code is checked, so
	// leftover codes cannot be redeemed. The purge is hygiene; a failure is
	// logged, not surfaced.
	if err := s.repoDB.DeleteOneTimeCodesByUser(ctx, in.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo purge one time codes", "user_id", in.ID, "error", err)
	}

	return nil
}
