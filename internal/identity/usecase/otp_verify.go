package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type OTPVerifyInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,number"`
}

type OTPVerifyOutput struct {
	Token string
	User  entity.User
}

func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) (*OTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	allowed, err := s.limiter.Allow(ctx, "otp_verify:"+in.Email)
	if err != nil {
		slog.WarnContext(ctx, "failed to check otp verify attempts", "email", in.Email, "error", err)
	} else if !allowed {
		slog.WarnContext(ctx, "otp verify attempts exhausted", "email", in.Email)
		return nil, goerror.NewBusiness("Too many attempts, please try again later", goerror.CodeTooManyRequest)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email, false)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp verify requested for unavailable user", "email", in.Email)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	// A wrong code and an expired code are indistinguishable to the caller.
	code, err := s.repoDB.GetOneTimeCode(ctx, user.ID, in.OTP, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp did not match an outstanding code", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidFormat)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get one time code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Codes are single use: consume it before issuing the token.
	if err := s.repoDB.DeleteOneTimeCode(ctx, code.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete one time code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.limiter.Reset(ctx, "otp_verify:"+in.Email); err != nil {
		slog.WarnContext(ctx, "failed to reset otp verify attempts", "user_id", user.ID, "error", err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, user.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OTPVerifyOutput{
		Token: token,
		User:  *user,
	}, nil
}
