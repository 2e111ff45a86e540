package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/idempotency"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
)

type OTPSendInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) OTPSend(ctx context.Context, in OTPSendInput) error {
	ctx, span := s.startSpan(ctx, "OTPSend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email, false)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp requested for unavailable user", "email", in.Email)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return err
	}

	lock := s.cfg.GetSecond("modules.identity.otp_send_lock_seconds")
	state, err := s.idemp.Acquire(ctx, "otp_send:"+in.Email, lock)
	if err != nil {
		slog.ErrorContext(ctx, "failed to acquire otp send lock", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}
	if state != idempotency.StateNone {
		slog.WarnContext(ctx, "otp send requested while lock held", "user_id", user.ID, "state", state.String())
		return goerror.NewBusiness("OTP was sent recently, please wait before retrying", goerror.CodeTooManyRequest)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	expiresAt := s.clock.Now().Add(ttl)

	// Replaces any outstanding code so at most one is valid per user.
	if err := s.repoDB.ReplaceOneTimeCode(ctx, entity.OneTimeCode{
		ID:        s.uid.Generate(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo replace one time code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	// Delivery is synchronous: the caller must know when the email could not
	// be sent. The persisted code stays valid either way.
	if err := s.sendOTPEmail(ctx, user, code, int(ttl.Minutes())); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp issued", "user_id", user.ID, "error", err)
	}

	return nil
}

func (s *Usecase) sendOTPEmail(ctx context.Context, user *entity.User, code string, ttlMinutes int) error {
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour login code is %s. This code will expire in %d minutes.\n\nIf you did not request this code, you can ignore this email.\n",
		user.Name, code, ttlMinutes,
	)
	htmlBody := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your login code is <strong>%s</strong>. This code will expire in %d minutes.</p><p>If you did not request this code, you can ignore this email.</p>`,
		user.Name, code, ttlMinutes,
	)

	return s.mail.Send(ctx, mail.Message{
		To:       []string{user.Email},
		Subject:  "Your Shelfwise login code",
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
