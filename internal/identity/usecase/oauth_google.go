package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleAuthURLOutput struct {
	AuthURL string
}

type GoogleCallbackInput struct {
	State string `validate:"required"`
	Code  string `validate:"required"`
}

type GoogleCallbackOutput struct {
	Token string
	User  entity.User
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleAuthURL starts the OAuth flow by issuing a one-time state and the
// Google consent URL the client should redirect to.
func (s *Usecase) GoogleAuthURL(ctx context.Context) (*GoogleAuthURLOutput, error) {
	ctx, span := s.startSpan(ctx, "GoogleAuthURL")
	defer span.End()

	state := s.uuid.Generate()
	ttl := s.cfg.GetMinute("modules.identity.oauth_state_ttl_minutes")
	if err := s.repoCache.SaveOAuthState(ctx, state, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to save oauth state", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GoogleAuthURLOutput{AuthURL: s.oauthGoogle.AuthCodeURL(state)}, nil
}

// GoogleCallback completes the OAuth flow: it validates the state, exchanges
// the authorization code, and signs the user in (creating the account on
// first login).
func (s *Usecase) GoogleCallback(ctx context.Context, in GoogleCallbackInput) (*GoogleCallbackOutput, error) {
	ctx, span := s.startSpan(ctx, "GoogleCallback")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ok, err := s.repoCache.TakeOAuthState(ctx, in.State)
	if err != nil {
		slog.ErrorContext(ctx, "failed to take oauth state", "error", err)
		return nil, goerror.NewServer(err)
	}
	if !ok {
		slog.WarnContext(ctx, "oauth state is unknown or already used")
		return nil, goerror.NewBusiness("Invalid OAuth state", goerror.CodeInvalidFormat)
	}

	token, err := s.oauthGoogle.Exchange(ctx, in.Code)
	if err != nil {
		slog.WarnContext(ctx, "failed to exchange oauth code", "error", err)
		return nil, goerror.NewBusiness("Invalid OAuth code", goerror.CodeInvalidFormat)
	}

	info, err := s.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch google user info", "error", err)
		return nil, goerror.NewServer(err)
	}

	email := strings.TrimSpace(strings.ToLower(info.Email))
	if email == "" {
		return nil, goerror.NewBusiness("Google account has no email", goerror.CodeInvalidFormat)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, email, false)
	if errors.Is(err, goerror.ErrNotFound) {
		user, err = s.createGoogleUser(ctx, email, info.Name)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	} else if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	jwtToken, err := s.jwt.Generate(user.ID, user.Email, user.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GoogleCallbackOutput{
		Token: jwtToken,
		User:  *user,
	}, nil
}

func (s *Usecase) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := s.oauthGoogle.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		//nolint:errcheck // nothing to do with the close error
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected userinfo response status " + resp.Status)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	return &info, nil
}

func (s *Usecase) createGoogleUser(ctx context.Context, email, name string) (*entity.User, error) {
	if name == "" {
		name = email
	}

	// The account is OTP/OAuth only, so the stored password is an unguessable
	// random value.
	pwHash, err := s.bcrypt.Hash(s.uuid.Generate())
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash generated password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.User{
		ID:       s.uid.Generate(),
		Name:     name,
		Email:    email,
		Password: string(pwHash),
		Role:     entity.UserRoleUser,
		Status:   entity.UserStatusActive,
	}
	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to repo create user from google", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &user, nil
}
