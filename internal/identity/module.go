package identity

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shelfwise/shelfwise/internal/identity/inbound"
	"github.com/shelfwise/shelfwise/internal/identity/outbound/cache"
	"github.com/shelfwise/shelfwise/internal/identity/outbound/db"
	"github.com/shelfwise/shelfwise/internal/identity/outbound/mq"
	"github.com/shelfwise/shelfwise/internal/identity/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/clock"
	"github.com/shelfwise/shelfwise/internal/pkg/config"
	"github.com/shelfwise/shelfwise/internal/pkg/goroutine"
	"github.com/shelfwise/shelfwise/internal/pkg/hash"
	"github.com/shelfwise/shelfwise/internal/pkg/idempotency"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/jwt"
	"github.com/shelfwise/shelfwise/internal/pkg/limiter"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
	"github.com/shelfwise/shelfwise/internal/pkg/messaging"
	"github.com/shelfwise/shelfwise/internal/pkg/otp"
	"github.com/shelfwise/shelfwise/internal/pkg/router"
	"github.com/shelfwise/shelfwise/internal/pkg/uid"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
	"golang.org/x/oauth2"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Enforcer    *casbin.Enforcer           `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Limiter     limiter.Limiter            `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	OTP         otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
	OAuthGoogle *oauth2.Config             `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbIdentity := db.NewDB(dep.DBConn, dep.Instrument)
	cacheIdentity := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbIdentity,
		RepoMessaging: repoMsg,
		RepoCache:     cacheIdentity,
		Idempotency:   dep.Idempotency,
		Limiter:       dep.Limiter,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		UUID:          dep.UUID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Mail:          dep.Mail,
		OAuthGoogle:   dep.OAuthGoogle,
		Instrument:    dep.Instrument,
		Enforcer:      dep.Enforcer,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
