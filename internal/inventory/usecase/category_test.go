package usecase

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func TestCategoryCreate(t *testing.T) {
	t.Run("ForbiddenForUserRole", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		_, err := uc.CategoryCreate(authedCtx("user"), CategoryCreateInput{Name: "Beverages"})
		assertErrCode(t, err, goerror.CodeForbidden)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.createCatErr = goerror.ErrConflict
		uc := deps.build(t)

		_, err := uc.CategoryCreate(authedCtx("admin"), CategoryCreateInput{Name: "Beverages"})
		assertErrCode(t, err, goerror.CodeConflict)
	})

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps()
		uc := deps.build(t)

		out, err := uc.CategoryCreate(authedCtx("admin"), CategoryCreateInput{Name: "  Beverages  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "Beverages" {
			t.Fatalf("expected trimmed name, got %q", out.Category.Name)
		}
		if out.Category.CreatedBy != 7 {
			t.Fatalf("expected creator from claims, got %d", out.Category.CreatedBy)
		}
	})
}

func TestCategoryDelete(t *testing.T) {
	t.Run("StillHasItems", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.deleteCatErr = goerror.ErrConflict
		uc := deps.build(t)

		err := uc.CategoryDelete(authedCtx("admin"), CategoryDeleteInput{ID: 9})
		assertErrCode(t, err, goerror.CodeConflict)
	})

	t.Run("NotFound", func(t *testing.T) {
		deps := newTestDeps()
		deps.repoDB.deleteCatErr = goerror.ErrNotFound
		uc := deps.build(t)

		err := uc.CategoryDelete(authedCtx("admin"), CategoryDeleteInput{ID: 9})
		assertErrCode(t, err, goerror.CodeNotFound)
	})
}
