package db

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

const categoryColumns = `id, name, created_by, created_at, updated_at`

func (s *DB) scanCategory(row interface{ Scan(dest ...any) error }) (*entity.Category, error) {
	var category entity.Category

	if err := row.Scan(
		&category.ID,
		&category.Name,
		&category.CreatedBy,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *DB) GetCategoryList(ctx context.Context) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategoryList")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + categoryColumns + ` FROM inventory_categories ORDER BY name ASC`
	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		category, errScan := s.scanCategory(rows)
		if errScan != nil {
			err = errScan
			return nil, s.mapError(err)
		}
		categories = append(categories, *category)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return categories, nil
}

func (s *DB) GetCategoryByID(ctx context.Context, id int64) (_ *entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategoryByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + categoryColumns + ` FROM inventory_categories WHERE id = $1`
	category, err := s.scanCategory(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return category, nil
}

func (s *DB) CreateCategory(ctx context.Context, category entity.Category) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCategory")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO inventory_categories (id, name, created_by) VALUES ($1, $2, $3)`
	_, err = s.conn.Exec(ctx, query, category.ID, category.Name, category.CreatedBy)

	err = s.mapError(err)
	return err
}

func (s *DB) UpdateCategory(ctx context.Context, id int64, name string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateCategory")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE inventory_categories SET name = $2, updated_at = NOW() WHERE id = $1`
	tag, err := s.conn.Exec(ctx, query, id, name)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeleteCategory(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCategory")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM inventory_categories WHERE id = $1`
	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
