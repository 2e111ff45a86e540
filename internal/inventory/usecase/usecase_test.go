package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/jwt"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
)

type fakeConfig struct {
	ints map[string]int64
}

func (f *fakeConfig) Close() error                        { return nil }
func (f *fakeConfig) GetSecond(key string) time.Duration  { return time.Duration(f.ints[key]) * time.Second }
func (f *fakeConfig) GetMinute(key string) time.Duration  { return time.Duration(f.ints[key]) * time.Minute }
func (f *fakeConfig) GetHour(key string) time.Duration    { return time.Duration(f.ints[key]) * time.Hour }
func (f *fakeConfig) GetInt(key string) int               { return int(f.ints[key]) }
func (f *fakeConfig) GetInt32(key string) int32           { return int32(f.ints[key]) }
func (f *fakeConfig) GetInt64(key string) int64           { return f.ints[key] }
func (f *fakeConfig) GetFloat64(key string) float64       { return float64(f.ints[key]) }
func (f *fakeConfig) GetBool(key string) bool             { return false }
func (f *fakeConfig) GetString(key string) string         { return "" }
func (f *fakeConfig) GetArray(key string) []string        { return nil }
func (f *fakeConfig) GetMap(key string) map[string]string { return nil }

type fakeRepoDB struct {
	categories    []entity.Category
	categoryErr   error
	createCatErr  error
	deleteCatErr  error
	activeItems   []entity.Item
	createdItems  []entity.Item
	createItemErr error
}

func (f *fakeRepoDB) GetCategoryList(context.Context) ([]entity.Category, error) {
	return f.categories, f.categoryErr
}

func (f *fakeRepoDB) GetCategoryByID(_ context.Context, id int64) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) CreateCategory(_ context.Context, category entity.Category) error {
	if f.createCatErr != nil {
		return f.createCatErr
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeRepoDB) UpdateCategory(context.Context, int64, string) error { return nil }
func (f *fakeRepoDB) DeleteCategory(context.Context, int64) error         { return f.deleteCatErr }

func (f *fakeRepoDB) GetItemList(context.Context, entity.ItemListFilter) ([]entity.Item, int64, error) {
	return f.activeItems, int64(len(f.activeItems)), nil
}

func (f *fakeRepoDB) GetItemByID(context.Context, int64) (*entity.Item, error) {
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetActiveItems(context.Context) ([]entity.Item, error) {
	return f.activeItems, nil
}

func (f *fakeRepoDB) CreateItem(_ context.Context, item entity.Item) error {
	if f.createItemErr != nil {
		return f.createItemErr
	}
	f.createdItems = append(f.createdItems, item)
	return nil
}

func (f *fakeRepoDB) UpdateItem(context.Context, entity.Item) error        { return nil }
func (f *fakeRepoDB) MarkItemDeleted(context.Context, int64, int64) error  { return nil }

type fakeMessaging struct {
	published []StockLowEvent
	err       error
}

func (f *fakeMessaging) PublishStockLow(_ context.Context, msg StockLowEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeNumberID struct{ next int64 }

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

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
		{"user", "categories", "read"},
		{"user", "items", "read"},
		{"user", "items", "write"},
		{"user", "summary", "read"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		t.Fatalf("add policies: %v", err)
	}

	return e
}

type testDeps struct {
	repoDB    *fakeRepoDB
	messaging *fakeMessaging
	config    *fakeConfig
	uid       *fakeNumberID
}

func newTestDeps() *testDeps {
	return &testDeps{
		repoDB:    &fakeRepoDB{},
		messaging: &fakeMessaging{},
		config: &fakeConfig{ints: map[string]int64{
			"modules.inventory.low_stock_threshold": 5,
		}},
		uid: &fakeNumberID{},
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
		Validator:     v,
		Config:        d.config,
		UID:           d.uid,
		Clock:         &fakeClock{now: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
		Enforcer:      newTestEnforcer(t),
	})
}

func authedCtx(role string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    7,
		UserEmail: "staff@example.com",
		UserRole:  role,
	})
}

func assertErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %s, got %s (msg=%q)", code.String(), gerr.Code().String(), gerr.Msg())
	}
}

func floatPtr(v float64) *float64 { return &v }
