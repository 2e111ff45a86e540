package inbound

import (
	"github.com/shelfwise/shelfwise/internal/identity/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication, profile, and user
// directory workflows.
type HTTPEndpoint struct {
	uc uc
}

// OTPSend emails a one-time login code to a registered user.
// @Summary Send login OTP
// @Description Issues a six-digit one-time code and emails it to the user. Any previous code is replaced.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body OTPSendRequest true "OTP send payload"
// @Success 200 {object} OTPSendResponse "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 403 {object} router.errorResponse "Account is inactive"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /otp/send [post]
func (h *HTTPEndpoint) OTPSend(r *router.Request) (any, error) {
	var req OTPSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OTPSend(r.Context(), usecase.OTPSendInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return OTPSendResponse{Message: "OTP sent successfully"}, nil
}

// OTPVerify exchanges a one-time code for a session token.
// @Summary Verify login OTP
// @Description Validates the emailed code and returns a JWT plus the user. Codes are single use.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body OTPVerifyRequest true "OTP verify payload"
// @Success 200 {object} OTPVerifyResponse "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 403 {object} router.errorResponse "Account is inactive"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Too many attempts"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /otp/verify [post]
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return OTPVerifyResponse{
		Message: "OTP verified successfully",
		Token:   resp.Token,
		User:    newUserPayload(resp.User),
	}, nil
}

// Login authenticates a user with email and password.
// @Summary Authenticate user
// @Description Validates credentials and returns a JWT plus the user.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} LoginResponse "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Message: "Login successful",
		Token:   resp.Token,
		User:    newUserPayload(resp.User),
	}, nil
}

// GoogleAuth starts the Google OAuth login flow.
// @Summary Start Google OAuth
// @Description Returns the Google consent URL the client should redirect to.
// @Tags Identity, Authentication
// @Produce json
// @Success 200 {object} GoogleAuthResponse "Consent URL"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/google [get]
func (h *HTTPEndpoint) GoogleAuth(r *router.Request) (any, error) {
	resp, err := h.uc.GoogleAuthURL(r.Context())
	if err != nil {
		return nil, err
	}

	return GoogleAuthResponse{AuthURL: resp.AuthURL}, nil
}

// GoogleCallback completes the Google OAuth login flow.
// @Summary Complete Google OAuth
// @Description Validates state, exchanges the authorization code, and returns a JWT plus the user.
// @Tags Identity, Authentication
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} LoginResponse "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid state or code"
// @Failure 403 {object} router.errorResponse "Account is inactive"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/google/callback [get]
func (h *HTTPEndpoint) GoogleCallback(r *router.Request) (any, error) {
	resp, err := h.uc.GoogleCallback(r.Context(), usecase.GoogleCallbackInput{
		State: r.GetQuery("state"),
		Code:  r.GetQuery("code"),
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Message: "Login successful",
		Token:   resp.Token,
		User:    newUserPayload(resp.User),
	}, nil
}

// Profile returns the authenticated user's account.
// @Summary Get profile
// @Tags Identity, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse "User account"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{User: newUserPayload(resp.User)}, nil
}

// ProfileUpdate renames the authenticated user's account.
// @Summary Update profile
// @Tags Identity, Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileUpdateRequest true "Profile payload"
// @Success 200 {object} ProfileUpdateResponse "Profile updated"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req ProfileUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{Name: req.Name}); err != nil {
		return nil, err
	}

	return ProfileUpdateResponse{Message: "Profile updated successfully"}, nil
}

// UserList lists user accounts for administrators.
// @Summary List users
// @Tags Identity, Users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} UserListResponse "User accounts"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search: r.GetQuery("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	users := make([]UserPayload, 0, len(resp.Users))
	for _, user := range resp.Users {
		users = append(users, newUserPayload(user))
	}

	return UserListResponse{Users: users, Total: resp.Total}, nil
}

// UserCreate registers a user account on behalf of an administrator.
// @Summary Create user
// @Tags Identity, Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UserCreateRequest true "User payload"
// @Success 201 {object} UserCreateResponse "User created"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/users [post]
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req UserCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return UserCreateResponse{
		Message: "User created successfully",
		User:    newUserPayload(resp.User),
	}, nil
}

// UserUpdate modifies a user account.
// @Summary Update user
// @Tags Identity, Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UserUpdateRequest true "User payload"
// @Success 200 {object} UserUpdateResponse "User updated"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/users/{id} [put]
func (h *HTTPEndpoint) UserUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UserUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.UserUpdate(r.Context(), usecase.UserUpdateInput{
		ID:     id,
		Name:   req.Name,
		Role:   req.Role,
		Status: req.Status,
	}); err != nil {
		return nil, err
	}

	return UserUpdateResponse{Message: "User updated successfully"}, nil
}

// UserDelete soft-deletes a user account.
// @Summary Delete user
// @Tags Identity, Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserDeleteResponse "User deleted"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/users/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return UserDeleteResponse{Message: "User deleted successfully"}, nil
}
