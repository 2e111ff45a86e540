package usecase

import (
	"context"
	"log/slog"

	"github.com/casbin/casbin/v3"
	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/clock"
	"github.com/shelfwise/shelfwise/internal/pkg/config"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
	"github.com/shelfwise/shelfwise/internal/pkg/goroutine"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/jwt"
	"github.com/shelfwise/shelfwise/internal/pkg/uid"
	"github.com/shelfwise/shelfwise/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type StockLowEvent struct {
	ItemID    int64
	ItemName  string
	Quantity  int64
	Threshold int64
}

type repoMessaging interface {
	PublishStockLow(ctx context.Context, msg StockLowEvent) error
}

type repoDB interface {
	GetCategoryList(ctx context.Context) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, category entity.Category) error
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error

	GetItemList(ctx context.Context, filter entity.ItemListFilter) ([]entity.Item, int64, error)
	GetItemByID(ctx context.Context, id int64) (*entity.Item, error)
	GetActiveItems(ctx context.Context) ([]entity.Item, error)
	CreateItem(ctx context.Context, item entity.Item) error
	UpdateItem(ctx context.Context, item entity.Item) error
	MarkItemDeleted(ctx context.Context, id, byID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("inventory.usecase").Start(ctx, name)
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

// notifyStockLow publishes a stock_low event when the quantity is below the
// configured threshold. Publish failures never fail the calling operation.
func (s *Usecase) notifyStockLow(ctx context.Context, item entity.Item) {
	threshold := s.cfg.GetInt64("modules.inventory.low_stock_threshold")
	if item.Quantity >= threshold {
		return
	}

	if err := s.repoMessaging.PublishStockLow(ctx, StockLowEvent{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Quantity:  item.Quantity,
		Threshold: threshold,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish stock low", "item_id", item.ID, "error", err)
	}
}
