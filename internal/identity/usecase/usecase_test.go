package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/idempotency"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/jwt"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type fakeConfig struct {
	ints    map[string]int64
	strings map[string]string
}

func (f *fakeConfig) Close() error                          { return nil }
func (f *fakeConfig) GetSecond(key string) time.Duration    { return time.Duration(f.ints[key]) * time.Second }
func (f *fakeConfig) GetMinute(key string) time.Duration    { return time.Duration(f.ints[key]) * time.Minute }
func (f *fakeConfig) GetHour(key string) time.Duration      { return time.Duration(f.ints[key]) * time.Hour }
func (f *fakeConfig) GetInt(key string) int                 { return int(f.ints[key]) }
func (f *fakeConfig) GetInt32(key string) int32             { return int32(f.ints[key]) }
func (f *fakeConfig) GetInt64(key string) int64             { return f.ints[key] }
func (f *fakeConfig) GetFloat64(key string) float64         { return float64(f.ints[key]) }
func (f *fakeConfig) GetBool(key string) bool               { return false }
func (f *fakeConfig) GetString(key string) string           { return f.strings[key] }
func (f *fakeConfig) GetArray(key string) []string          { return nil }
func (f *fakeConfig) GetMap(key string) map[string]string   { return nil }

type fakeRepoDB struct {
	getUserByEmailFn func(email string, includeDeleted bool) (*entity.User, error)
	getOneTimeCodeFn func(userID int64, code string, now time.Time) (*entity.OneTimeCode, error)

	replacedCodes []entity.OneTimeCode
	replaceErr    error

	deletedCodeIDs []int64
	deleteCodeErr  error

	markDeletedUsers []int64
	markDeletedErr   error

	purgedCodeUsers []int64
	purgeCodesErr   error
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string, includeDeleted bool) (*entity.User, error) {
	return f.getUserByEmailFn(email, includeDeleted)
}

func (f *fakeRepoDB) GetUserByID(context.Context, int64, bool) (*entity.User, error) {
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetUserList(context.Context, entity.UserListFilter) ([]entity.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepoDB) GetOneTimeCode(_ context.Context, userID int64, code string, now time.Time) (*entity.OneTimeCode, error) {
	return f.getOneTimeCodeFn(userID, code, now)
}

func (f *fakeRepoDB) CreateUser(context.Context, entity.User) error { return nil }

func (f *fakeRepoDB) ReplaceOneTimeCode(_ context.Context, code entity.OneTimeCode) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replacedCodes = append(f.replacedCodes, code)
	return nil
}

func (f *fakeRepoDB) UpdateUser(context.Context, entity.UpdateUser) error { return nil }
func (f *fakeRepoDB) UpdateUserName(context.Context, int64, string) error { return nil }

func (f *fakeRepoDB) MarkUserDeleted(_ context.Context, id, _ int64) error {
	if f.markDeletedErr != nil {
		return f.markDeletedErr
	}
	f.markDeletedUsers = append(f.markDeletedUsers, id)
	return nil
}

func (f *fakeRepoDB) DeleteOneTimeCodesByUser(_ context.Context, userID int64) error {
	if f.purgeCodesErr != nil {
		return f.purgeCodesErr
	}
	f.purgedCodeUsers = append(f.purgedCodeUsers, userID)
	return nil
}

func (f *fakeRepoDB) DeleteOneTimeCode(_ context.Context, id int64) error {
	if f.deleteCodeErr != nil {
		return f.deleteCodeErr
	}
	f.deletedCodeIDs = append(f.deletedCodeIDs, id)
	return nil
}

type fakeMessaging struct {
	published []OTPIssuedEvent
	err       error
}

func (f *fakeMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeCache struct {
	saved map[string]time.Duration
	taken map[string]bool
}

func (f *fakeCache) SaveOAuthState(_ context.Context, state string, ttl time.Duration) error {
	if f.saved == nil {
		f.saved = make(map[string]time.Duration)
	}
	f.saved[state] = ttl
	return nil
}

func (f *fakeCache) TakeOAuthState(_ context.Context, state string) (bool, error) {
	return f.taken[state], nil
}

type fakeIdemp struct {
	state idempotency.State
	err   error
	keys  []string
}

func (f *fakeIdemp) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return idempotency.StateError, f.err
	}
	if f.state == "" {
		return idempotency.StateNone, nil
	}
	return f.state, nil
}

func (f *fakeIdemp) MarkCompleted(context.Context, string, time.Duration) error { return nil }
func (f *fakeIdemp) MarkFailed(context.Context, string, time.Duration) error    { return nil }
func (f *fakeIdemp) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

type fakeLimiter struct {
	allowed  bool
	allowErr error
	resets   []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	if f.allowErr != nil {
		return false, f.allowErr
	}
	return f.allowed, nil
}

func (f *fakeLimiter) Reset(_ context.Context, key string) error {
	f.resets = append(f.resets, key)
	return nil
}

type fakeMail struct {
	sent []mail.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Close() error { return nil }

type fakeOTP struct{ code string }

func (f *fakeOTP) Generate() (string, error) { return f.code, nil }

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeStringID struct{ value string }

func (f *fakeStringID) Generate() string { return f.value }

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeJWT struct {
	token string
	err   error
}

func (f *fakeJWT) Generate(int64, string, string) (string, error) { return f.token, f.err }
func (f *fakeJWT) Verify(string) (jwt.Claims, error)              { return jwt.Claims{}, jwt.ErrInvalidToken }

type fakeHash struct{}

func (fakeHash) Hash(plaintext string) ([]byte, error) { return []byte("hashed:" + plaintext), nil }
func (fakeHash) Verify(hashed, plaintext string) bool  { return hashed == "hashed:"+plaintext }

// testDeps bundles every fake so tests can tweak behavior before building the
// usecase.
type testDeps struct {
	repoDB    *fakeRepoDB
	messaging *fakeMessaging
	cache     *fakeCache
	idemp     *fakeIdemp
	limiter   *fakeLimiter
	mail      *fakeMail
	otp       *fakeOTP
	uid       *fakeNumberID
	uuid      *fakeStringID
	clock     *fakeClock
	jwt       *fakeJWT
	config    *fakeConfig
}

func newTestDeps() *testDeps {
	return &testDeps{
		repoDB:    &fakeRepoDB{},
		messaging: &fakeMessaging{},
		cache:     &fakeCache{},
		idemp:     &fakeIdemp{},
		limiter:   &fakeLimiter{allowed: true},
		mail:      &fakeMail{},
		otp:       &fakeOTP{code: "482915"},
		uid:       &fakeNumberID{},
		uuid:      &fakeStringID{value: "f2f9a1de-8a44-4d5f-9f54-25b9e0e1a001"},
		clock:     &fakeClock{now: testNow},
		jwt:       &fakeJWT{token: "token-abc"},
		config: &fakeConfig{
			ints: map[string]int64{
				"modules.identity.otp_ttl_minutes":       10,
				"modules.identity.otp_send_lock_seconds": 60,
			},
			strings: map[string]string{},
		},
	}
}

func (d *testDeps) build(t *testing.T) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoDB:        d.repoDB,
		RepoMessaging: d.messaging,
		RepoCache:     d.cache,
		Idempotency:   d.idemp,
		Limiter:       d.limiter,
		Validator:     v,
		Config:        d.config,
		Bcrypt:        fakeHash{},
		UID:           d.uid,
		UUID:          d.uuid,
		OTP:           d.otp,
		Clock:         d.clock,
		JWT:           d.jwt,
		Mail:          d.mail,
		Instrument:    instrument.NewNoop(),
		Enforcer:      newTestEnforcer(t),
	})
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}

	policies := [][]string{
		{"admin", "*", "*"},
		{"user", "profile", "read"},
		{"user", "profile", "write"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		t.Fatalf("add policies: %v", err)
	}

	return e
}

func authedCtx(userID int64, role string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    userID,
		UserEmail: "staff@example.com",
		UserRole:  role,
	})
}

func activeUser() *entity.User {
	return &entity.User{
		ID:     42,
		Name:   "Dewi Lestari",
		Email:  "dewi@example.com",
		Role:   entity.UserRoleUser,
		Status: entity.UserStatusActive,
	}
}

func assertErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %s, got %s (msg=%q)", code.String(), gerr.Code().String(), gerr.Msg())
	}
}
