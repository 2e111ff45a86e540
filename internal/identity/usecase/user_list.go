package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type UserListInput struct {
	Search string
	Page   int32 `validate:"min=0"`
	Limit  int32 `validate:"min=0,max=100"`
}

type UserListOutput struct {
	Users []entity.User
	Total int64
}

func (s *Usecase) UserList(ctx context.Context, in UserListInput) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "users", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 20
	}

	users, total, err := s.repoDB.GetUserList(ctx, entity.UserListFilter{
		Search: strings.TrimSpace(in.Search),
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserListOutput{Users: users, Total: total}, nil
}
