package inbound

import (
	"net/http"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
)

// UserPayload is the JSON shape of a user account in responses.
type UserPayload struct {
	ID     int64  `json:"id,string" example:"1915338883719495680"`
	Name   string `json:"name" example:"Admin"`
	Email  string `json:"email" example:"admin@inventory.com"`
	Role   string `json:"role" example:"admin"`
	Status string `json:"status" example:"active"`
}

func newUserPayload(user entity.User) UserPayload {
	return UserPayload{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role.String(),
		Status: user.Status.String(),
	}
}

type OTPSendRequest struct {
	Email string `json:"email" example:"user@inventory.com"`
}

type OTPSendResponse struct {
	Message string `json:"message" example:"OTP sent successfully"`
}

type OTPVerifyRequest struct {
	Email string `json:"email" example:"user@inventory.com"`
	OTP   string `json:"otp" example:"123456"`
}

type OTPVerifyResponse struct {
	Message string      `json:"message" example:"OTP verified successfully"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"admin@inventory.com"`
	Password string `json:"password" example:"secret"`
}

type LoginResponse struct {
	Message string      `json:"message" example:"Login successful"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

type GoogleAuthResponse struct {
	AuthURL string `json:"auth_url"`
}

type ProfileResponse struct {
	User UserPayload `json:"user"`
}

type ProfileUpdateRequest struct {
	Name string `json:"name" example:"New Name"`
}

type ProfileUpdateResponse struct {
	Message string `json:"message" example:"Profile updated successfully"`
}

type UserListResponse struct {
	Users []UserPayload `json:"users"`
	Total int64         `json:"total"`
}

type UserCreateRequest struct {
	Name     string `json:"name" example:"New User"`
	Email    string `json:"email" example:"new@inventory.com"`
	Password string `json:"password" example:"secret"`
	Role     string `json:"role" example:"user"`
}

type UserCreateResponse struct {
	Message string      `json:"message" example:"User created successfully"`
	User    UserPayload `json:"user"`
}

// StatusCode marks user creation responses as 201.
func (UserCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type UserUpdateRequest struct {
	Name   string `json:"name" example:"Updated Name"`
	Role   string `json:"role" example:"user"`
	Status string `json:"status" example:"active"`
}

type UserUpdateResponse struct {
	Message string `json:"message" example:"User updated successfully"`
}

type UserDeleteResponse struct {
	Message string `json:"message" example:"User deleted successfully"`
}
