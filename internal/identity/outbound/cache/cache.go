package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const oauthStatePrefix = "identity:oauth:state:"

// Cache stores short-lived OAuth login states in Redis.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

// SaveOAuthState stores a state value until ttl elapses.
func (c *Cache) SaveOAuthState(ctx context.Context, state string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SaveOAuthState")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	err = c.client.Set(ctx, oauthStatePrefix+state, "1", ttl).Err()
	return err
}

// TakeOAuthState consumes a state value. It reports false when the state is
// unknown, expired, or already used.
func (c *Cache) TakeOAuthState(ctx context.Context, state string) (_ bool, err error) {
	ctx, span := c.startSpan(ctx, "TakeOAuthState")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	err = c.client.GetDel(ctx, oauthStatePrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		err = nil
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
