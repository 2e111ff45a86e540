package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func TestOTPVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidCodeFormat", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		_, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "dewi@example.com", OTP: "12ab56"})
		assertErrCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		deps := newTestDeps()
		deps.limiter.allowed = false
		uc := deps.build(t)

		_, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "dewi@example.com", OTP: "482915"})
		assertErrCode(t, err, goerror.CodeTooManyRequest)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return nil, goerror.ErrNotFound
		}
		uc := deps.build(t)

		_, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "dewi@example.com", OTP: "482915"})
		assertErrCode(t, err, goerror.CodeNotFound)
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			user := activeUser()
			user.Status = entity.UserStatusInactive
			return user, nil
		}
		uc := deps.build(t)

		_, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "dewi@example.com", OTP: "482915"})
		assertErrCode(t, err, goerror.CodeForbidden)
	})

	t.Run("WrongOrExpiredCode", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return activeUser(), nil
		}
		deps.repoDB.getOneTimeCodeFn = func(int64, string, time.Time) (*entity.OneTimeCode, error) {
			return nil, goerror.ErrNotFound
		}
		uc := deps.build(t)

		_, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "dewi@example.com", OTP: "000000"})
		assertErrCode(t, err, goerror.CodeInvalidFormat)

		if len(deps.limiter.resets) != 0 {
			t.Fatal("expected attempt counter untouched on failure")
		}
	})

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return activeUser(), nil
		}
		deps.repoDB.getOneTimeCodeFn = func(userID int64, code string, now time.Time) (*entity.OneTimeCode, error) {
			if userID != 42 {
				t.Fatalf("expected lookup for user 42, got %d", userID)
			}
			if code != "482915" {
				t.Fatalf("expected lookup for submitted code, got %q", code)
			}
			if !now.Equal(testNow) {
				t.Fatalf("expected lookup at %v, got %v", testNow, now)
			}
			return &entity.OneTimeCode{ID: 77, UserID: userID, Code: code}, nil
		}
		uc := deps.build(t)

		out, err := uc.OTPVerify(ctx, OTPVerifyInput{Email: "Dewi@Example.com", OTP: "482915"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Token != "token-abc" {
			t.Fatalf("expected issued token, got %q", out.Token)
		}
		if out.User.ID != 42 {
			t.Fatalf("expected user in output, got %d", out.User.ID)
		}

		// Single use: the code is consumed and the attempt counter reset.
		if len(deps.repoDB.deletedCodeIDs) != 1 || deps.repoDB.deletedCodeIDs[0] != 77 {
			t.Fatalf("expected code 77 deleted, got %v", deps.repoDB.deletedCodeIDs)
		}
		if len(deps.limiter.resets) != 1 {
			t.Fatalf("expected one limiter reset, got %d", len(deps.limiter.resets))
		}
	})
}
