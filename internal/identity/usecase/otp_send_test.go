package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/idempotency"
)

func TestOTPSend(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidEmail", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		err := uc.OTPSend(ctx, OTPSendInput{Email: "not-an-email"})
		assertErrCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return nil, goerror.ErrNotFound
		}
		uc := deps.build(t)

		err := uc.OTPSend(ctx, OTPSendInput{Email: "dewi@example.com"})
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

		err := uc.OTPSend(ctx, OTPSendInput{Email: "dewi@example.com"})
		assertErrCode(t, err, goerror.CodeForbidden)
	})

	t.Run("CooldownHeld", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return activeUser(), nil
		}
		deps.idemp.state = idempotency.StateInProgress
		uc := deps.build(t)

		err := uc.OTPSend(ctx, OTPSendInput{Email: "dewi@example.com"})
		assertErrCode(t, err, goerror.CodeTooManyRequest)

		if len(deps.repoDB.replacedCodes) != 0 {
			t.Fatalf("expected no code persisted while cooldown held")
		}
	})

	t.Run("MailFailureAfterPersist", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return activeUser(), nil
		}
		deps.mail.err = errors.New("smtp connection refused")
		uc := deps.build(t)

		err := uc.OTPSend(ctx, OTPSendInput{Email: "dewi@example.com"})
		assertErrCode(t, err, goerror.CodeInternal)

		// The code is already stored, so the failure surfaces after persist.
		if len(deps.repoDB.replacedCodes) != 1 {
			t.Fatalf("expected code persisted before mail failure, got %d", len(deps.repoDB.replacedCodes))
		}
	})

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(email string, includeDeleted bool) (*entity.User, error) {
			if email != "dewi@example.com" {
				t.Fatalf("expected normalized email, got %q", email)
			}
			if includeDeleted {
				t.Fatal("expected deleted users to be excluded")
			}
			return activeUser(), nil
		}
		uc := deps.build(t)

		if err := uc.OTPSend(ctx, OTPSendInput{Email: "  Dewi@Example.COM "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(deps.repoDB.replacedCodes) != 1 {
			t.Fatalf("expected one code persisted, got %d", len(deps.repoDB.replacedCodes))
		}
		code := deps.repoDB.replacedCodes[0]
		if code.Code != "482915" {
			t.Fatalf("expected generated code persisted, got %q", code.Code)
		}
		if code.UserID != 42 {
			t.Fatalf("expected code bound to user 42, got %d", code.UserID)
		}
		if want := testNow.Add(10 * time.Minute); !code.ExpiresAt.Equal(want) {
			t.Fatalf("expected expiry %v, got %v", want, code.ExpiresAt)
		}

		if len(deps.mail.sent) != 1 {
			t.Fatalf("expected one email sent, got %d", len(deps.mail.sent))
		}
		msg := deps.mail.sent[0]
		if msg.Subject != "Your Shelfwise login code" {
			t.Fatalf("unexpected subject %q", msg.Subject)
		}
		if len(msg.To) != 1 || msg.To[0] != "dewi@example.com" {
			t.Fatalf("unexpected recipients %v", msg.To)
		}

		if len(deps.messaging.published) != 1 {
			t.Fatalf("expected otp issued event published, got %d", len(deps.messaging.published))
		}
	})

	t.Run("PublishFailureIsSwallowed", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.getUserByEmailFn = func(string, bool) (*entity.User, error) {
			return activeUser(), nil
		}
		deps.messaging.err = errors.New("broker unavailable")
		uc := deps.build(t)

		if err := uc.OTPSend(ctx, OTPSendInput{Email: "dewi@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(deps.mail.sent) != 1 {
			t.Fatalf("expected email still sent, got %d", len(deps.mail.sent))
		}
	})
}
