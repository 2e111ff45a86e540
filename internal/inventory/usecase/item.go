package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type ItemListInput struct {
	CategoryID int64 `validate:"min=0"`
	Search     string
	Page       int32 `validate:"min=0"`
	Limit      int32 `validate:"min=0,max=100"`
}

type ItemListOutput struct {
	Items []entity.Item
	Total int64
}

func (s *Usecase) ItemList(ctx context.Context, in ItemListInput) (*ItemListOutput, error) {
	ctx, span := s.startSpan(ctx, "ItemList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "items", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 20
	}

	items, total, err := s.repoDB.GetItemList(ctx, entity.ItemListFilter{
		CategoryID: in.CategoryID,
		Search:     strings.TrimSpace(in.Search),
		Page:       in.Page,
		Limit:      in.Limit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get item list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ItemListOutput{Items: items, Total: total}, nil
}

type ItemCreateInput struct {
	Name        string `validate:"required,min=2,max=150"`
	Brand       string `validate:"max=100"`
	CategoryID  int64  `validate:"required,gt=0"`
	Source      string `validate:"required,oneof=purchase transfer donation return other"`
	Destination *string
	Quantity    int64 `validate:"min=0"`
	Description *string
	ExpiryDate  *time.Time
	UnitPrice   *float64
}

type ItemCreateOutput struct {
	Item entity.Item
}

func (s *Usecase) ItemCreate(ctx context.Context, in ItemCreateInput) (*ItemCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ItemCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "items", "write")
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category, err := s.repoDB.GetCategoryByID(ctx, in.CategoryID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "item references unknown category", "category_id", in.CategoryID)
		return nil, goerror.NewBusiness("Category not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.CategoryID, "error", err)
		return nil, goerror.NewServer(err)
	}

	item := entity.Item{
		ID:           s.uid.Generate(),
		Name:         in.Name,
		Brand:        in.Brand,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Source:       entity.SourceTypeFromString(in.Source),
		Destination:  in.Destination,
		Quantity:     in.Quantity,
		Description:  in.Description,
		ExpiryDate:   in.ExpiryDate,
		UnitPrice:    in.UnitPrice,
		ModifiedBy:   clm.UserID,
	}
	if err := s.repoDB.CreateItem(ctx, item); err != nil {
		slog.ErrorContext(ctx, "failed to repo create item", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.notifyStockLow(ctx, item)

	return &ItemCreateOutput{Item: item}, nil
}

type ItemUpdateInput struct {
	ID          int64  `validate:"required,gt=0"`
	Name        string `validate:"required,min=2,max=150"`
	Brand       string `validate:"max=100"`
	CategoryID  int64  `validate:"required,gt=0"`
	Source      string `validate:"required,oneof=purchase transfer donation return other"`
	Destination *string
	Quantity    int64 `validate:"min=0"`
	Description *string
	ExpiryDate  *time.Time
	UnitPrice   *float64
}

func (s *Usecase) ItemUpdate(ctx context.Context, in ItemUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ItemUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "items", "write")
	if err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if _, err := s.repoDB.GetCategoryByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.CategoryID, "error", err)
		return goerror.NewServer(err)
	}

	item := entity.Item{
		ID:          in.ID,
		Name:        in.Name,
		Brand:       in.Brand,
		CategoryID:  in.CategoryID,
		Source:      entity.SourceTypeFromString(in.Source),
		Destination: in.Destination,
		Quantity:    in.Quantity,
		Description: in.Description,
		ExpiryDate:  in.ExpiryDate,
		UnitPrice:   in.UnitPrice,
		ModifiedBy:  clm.UserID,
	}
	if err := s.repoDB.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Item not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update item", "item_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.notifyStockLow(ctx, item)

	return nil
}

type ItemDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ItemDelete(ctx context.Context, in ItemDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ItemDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "items", "write")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.MarkItemDeleted(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Item not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark item deleted", "item_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
