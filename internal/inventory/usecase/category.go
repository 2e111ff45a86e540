package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

type CategoryListOutput struct {
	Categories []entity.Category
}

func (s *Usecase) CategoryList(ctx context.Context) (*CategoryListOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "categories", "read"); err != nil {
		return nil, err
	}

	categories, err := s.repoDB.GetCategoryList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryListOutput{Categories: categories}, nil
}

type CategoryCreateInput struct {
	Name string `validate:"required,min=2,max=100"`
}

type CategoryCreateOutput struct {
	Category entity.Category
}

func (s *Usecase) CategoryCreate(ctx context.Context, in CategoryCreateInput) (*CategoryCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "categories", "write")
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category := entity.Category{
		ID:        s.uid.Generate(),
		Name:      in.Name,
		CreatedBy: clm.UserID,
	}
	if err := s.repoDB.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "category name already exists", "name", in.Name)
			return nil, goerror.NewBusiness("Category already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create category", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryCreateOutput{Category: category}, nil
}

type CategoryUpdateInput struct {
	ID   int64  `validate:"required,gt=0"`
	Name string `validate:"required,min=2,max=100"`
}

func (s *Usecase) CategoryUpdate(ctx context.Context, in CategoryUpdateInput) error {
	ctx, span := s.startSpan(ctx, "CategoryUpdate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "categories", "write"); err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateCategory(ctx, in.ID, in.Name); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
		}
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Category already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo update category", "category_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type CategoryDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) CategoryDelete(ctx context.Context, in CategoryDeleteInput) error {
	ctx, span := s.startSpan(ctx, "CategoryDelete")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "categories", "write"); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteCategory(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
		}
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Category still has items", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo delete category", "category_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
