package db

import (
	"context"
	"strconv"

	"github.com/shelfwise/shelfwise/internal/inventory/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

const itemColumns = `i.id, i.name, i.brand, i.category_id, c.name, i.source, i.destination,
	i.quantity, i.description, i.expiry_date, i.unit_price, i.modified_by, i.created_at, i.updated_at`

func (s *DB) scanItem(row interface{ Scan(dest ...any) error }) (*entity.Item, error) {
	var item entity.Item
	var source string

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Brand,
		&item.CategoryID,
		&item.CategoryName,
		&source,
		&item.Destination,
		&item.Quantity,
		&item.Description,
		&item.ExpiryDate,
		&item.UnitPrice,
		&item.ModifiedBy,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.Source = entity.SourceTypeFromString(source)

	return &item, nil
}

func (s *DB) GetItemList(ctx context.Context, filter entity.ItemListFilter) (_ []entity.Item, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetItemList")
	defer func() { s.endSpan(span, err) }()

	where := ` WHERE i.deleted_at IS NULL`
	args := []any{}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		where += ` AND i.category_id = $1`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		if len(args) == 1 {
			where += ` AND (i.name ILIKE $1 OR i.brand ILIKE $1)`
		} else {
			where += ` AND (i.name ILIKE $2 OR i.brand ILIKE $2)`
		}
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM inventory_items i` + where
	if err = s.conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	limitPos := len(args) + 1
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := `SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN inventory_categories c ON c.id = i.category_id` + where + `
		ORDER BY i.created_at DESC, i.id DESC
		LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)

	rows, err := s.conn.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.Item, 0, filter.Limit)
	for rows.Next() {
		item, errScan := s.scanItem(rows)
		if errScan != nil {
			err = errScan
			return nil, 0, s.mapError(err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return items, total, nil
}

func (s *DB) GetItemByID(ctx context.Context, id int64) (_ *entity.Item, err error) {
	ctx, span := s.startSpan(ctx, "GetItemByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN inventory_categories c ON c.id = i.category_id
		WHERE i.id = $1 AND i.deleted_at IS NULL`
	item, err := s.scanItem(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return item, nil
}

func (s *DB) GetActiveItems(ctx context.Context) (_ []entity.Item, err error) {
	ctx, span := s.startSpan(ctx, "GetActiveItems")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN inventory_categories c ON c.id = i.category_id
		WHERE i.deleted_at IS NULL
		ORDER BY i.created_at DESC, i.id DESC`
	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var items []entity.Item
	for rows.Next() {
		item, errScan := s.scanItem(rows)
		if errScan != nil {
			err = errScan
			return nil, s.mapError(err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

func (s *DB) CreateItem(ctx context.Context, item entity.Item) (err error) {
	ctx, span := s.startSpan(ctx, "CreateItem")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO inventory_items
		(id, name, brand, category_id, source, destination, quantity, description, expiry_date, unit_price, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = s.conn.Exec(ctx, query,
		item.ID, item.Name, item.Brand, item.CategoryID, item.Source.String(), item.Destination,
		item.Quantity, item.Description, item.ExpiryDate, item.UnitPrice, item.ModifiedBy)

	err = s.mapError(err)
	return err
}

func (s *DB) UpdateItem(ctx context.Context, item entity.Item) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateItem")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE inventory_items
		SET name = $2, brand = $3, category_id = $4, source = $5, destination = $6,
			quantity = $7, description = $8, expiry_date = $9, unit_price = $10,
			modified_by = $11, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := s.conn.Exec(ctx, query,
		item.ID, item.Name, item.Brand, item.CategoryID, item.Source.String(), item.Destination,
		item.Quantity, item.Description, item.ExpiryDate, item.UnitPrice, item.ModifiedBy)
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

func (s *DB) MarkItemDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkItemDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE inventory_items
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := s.conn.Exec(ctx, query, id, byID)
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
