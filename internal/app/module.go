package app

import (
	"log/slog"
	"os"

	"github.com/shelfwise/shelfwise/internal/identity"
	"github.com/shelfwise/shelfwise/internal/inventory"
	"github.com/shelfwise/shelfwise/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			Validator:   a.validator,
			Router:      a.router,
			OTP:         a.otp,
			DBConn:      a.dbConn,
			CacheConn:   a.cacheConn,
			Idempotency: a.idemp,
			Limiter:     a.otpLimiter,
			Mail:        a.mail,
			Messaging:   a.messaging,
			Goroutine:   a.goroutine,
			JWT:         a.jwt,
			Enforcer:    a.casbin,
			OAuthGoogle: a.oauthGoogle,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.inventory.enabled") {
		if err := inventory.New(inventory.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Goroutine:  a.goroutine,
			JWT:        a.jwt,
			Enforcer:   a.casbin,
		}); err != nil {
			slog.Error("failed to init module inventory", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
