package inbound

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/identity/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/router"
)

type uc interface {
	OTPSend(ctx context.Context, in usecase.OTPSendInput) error
	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	GoogleAuthURL(ctx context.Context) (*usecase.GoogleAuthURLOutput, error)
	GoogleCallback(ctx context.Context, in usecase.GoogleCallbackInput) (*usecase.GoogleCallbackOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*usecase.UserCreateOutput, error)
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) error
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Email OTP login
	r.POST("/otp/send", end.OTPSend)
	r.POST("/otp/verify", end.OTPVerify)

	// Password & OAuth login
	r.POST("/api/v1/auth/login", end.Login)
	r.GET("/api/v1/auth/google", end.GoogleAuth)
	r.GET("/api/v1/auth/google/callback", end.GoogleCallback)

	// User Profile (need authenticated)
	r.GET("/api/v1/profile", end.Profile)
	r.PUT("/api/v1/profile", end.ProfileUpdate)

	// User Directory (need authenticated & authorization)
	r.GET("/api/v1/users", end.UserList)
	r.POST("/api/v1/users", end.UserCreate)
	r.PUT("/api/v1/users/:id", end.UserUpdate)
	r.DELETE("/api/v1/users/:id", end.UserDelete)
}
