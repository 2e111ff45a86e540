package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func TestUserDelete(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(context.Background(), UserDeleteInput{ID: 42})

		// Assert
		assertErrCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("ForbiddenForUserRole", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(authedCtx(7, "user"), UserDeleteInput{ID: 42})

		// Assert
		assertErrCode(t, err, goerror.CodeForbidden)
	})

	t.Run("CannotDeleteOwnAccount", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(authedCtx(7, "admin"), UserDeleteInput{ID: 7})

		// Assert
		assertErrCode(t, err, goerror.CodeForbidden)
		if len(deps.repoDB.markDeletedUsers) != 0 {
			t.Fatalf("expected no delete, got %v", deps.repoDB.markDeletedUsers)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		deps.repoDB.markDeletedErr = goerror.ErrNotFound
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(authedCtx(7, "admin"), UserDeleteInput{ID: 42})

		// Assert
		assertErrCode(t, err, goerror.CodeNotFound)
		if len(deps.repoDB.purgedCodeUsers) != 0 {
			t.Fatalf("expected no code purge, got %v", deps.repoDB.purgedCodeUsers)
		}
	})

	t.Run("PurgesOutstandingCodes", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(authedCtx(7, "admin"), UserDeleteInput{ID: 42})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(deps.repoDB.markDeletedUsers) != 1 || deps.repoDB.markDeletedUsers[0] != 42 {
			t.Fatalf("expected user 42 deleted, got %v", deps.repoDB.markDeletedUsers)
		}
		if len(deps.repoDB.purgedCodeUsers) != 1 || deps.repoDB.purgedCodeUsers[0] != 42 {
			t.Fatalf("expected codes of user 42 purged, got %v", deps.repoDB.purgedCodeUsers)
		}
	})

	t.Run("PurgeFailureDoesNotFailDelete", func(t *testing.T) {
		// Arrange
		deps := newTestDeps()
		deps.repoDB.purgeCodesErr = errors.New("connection reset")
		uc := deps.build(t)

		// Act
		err := uc.UserDelete(authedCtx(7, "admin"), UserDeleteInput{ID: 42})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(deps.repoDB.markDeletedUsers) != 1 || deps.repoDB.markDeletedUsers[0] != 42 {
			t.Fatalf("expected user 42 deleted, got %v", deps.repoDB.markDeletedUsers)
		}
	})
}
