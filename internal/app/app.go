package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn      *pgxpool.Pool
	cacheConn   *redis.Client
	idemp       idempotency.Idempotency
	otpLimiter  limiter.Limiter
	mail        mail.Mail
	messaging   messaging.Messaging
	casbin      *casbin.Enforcer
	oauthGoogle *oauth2.Config

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initOAuth()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
