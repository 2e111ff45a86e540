package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/clock"
	"github.com/shelfwise/shelfwise/internal/pkg/config"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/goroutine"
	"github.com/shelfwise/shelfwise/internal/pkg/hash"
	"github.com/shelfwise/shelfwise/internal/pkg/idempotency"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/jwt"
	"github.com/shelfwise/shelfwise/internal/pkg/limiter"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
	"github.com/shelfwise/shelfwise/internal/pkg/otp"
	"github.com/shelfwise/shelfwise/internal/pkg/uid"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

type OTPIssuedEvent struct {
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

type repoMessaging interface {
	PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error)
	GetUserList(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error)
	GetOneTimeCode(ctx context.Context, userID int64, code string, now time.Time) (*entity.OneTimeCode, error)

	CreateUser(ctx context.Context, user entity.User) error
	ReplaceOneTimeCode(ctx context.Context, code entity.OneTimeCode) error

	UpdateUser(ctx context.Context, user entity.UpdateUser) error
	UpdateUserName(ctx context.Context, id int64, name string) error
	MarkUserDeleted(ctx context.Context, id, byID int64) error

	DeleteOneTimeCode(ctx context.Context, id int64) error
	DeleteOneTimeCodesByUser(ctx context.Context, userID int64) error
}

type repoCache interface {
	SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error
	TakeOAuthState(ctx context.Context, state string) (bool, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoCache     repoCache
	idemp         idempotency.Idempotency
	limiter       limiter.Limiter
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	mail          mail.Mail
	oauthGoogle   *oauth2.Config
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoCache     repoCache
	Idempotency   idempotency.Idempotency
	Limiter       limiter.Limiter
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Mail          mail.Mail
	OAuthGoogle   *oauth2.Config
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		repoCache:     dep.RepoCache,
		idemp:         dep.Idempotency,
		limiter:       dep.Limiter,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		uuid:          dep.UUID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		mail:          dep.Mail,
		oauthGoogle:   dep.OAuthGoogle,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) ensureUserStatusAllowed(ctx context.Context, userID int64, status entity.UserStatus) error {
	switch status {
	case entity.UserStatusInactive:
		slog.WarnContext(ctx, "user account is inactive", "user_id", userID)
		return goerror.NewBusiness("Account is inactive", goerror.CodeForbidden)

	case entity.UserStatusUnknown:
		slog.WarnContext(ctx, "user account status is unrecognized", "user_id", userID)
		return goerror.NewBusiness("Account is inactive", goerror.CodeForbidden)

	default:
		return nil
	}
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.UserRole, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}
