package db

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

const userColumns = `id, name, email, password, role, status, created_at, updated_at`

func (s *DB) scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	var user entity.User
	var role, status string

	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&role,
		&status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	user.Role = entity.UserRoleFromString(role)
	user.Status = entity.UserStatusFromString(status)

	return &user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string, includeDeleted bool) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM identity_users WHERE email = $1`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}

	user, err := s.scanUser(s.conn.QueryRow(ctx, query, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64, includeDeleted bool) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM identity_users WHERE id = $1`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}

	user, err := s.scanUser(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilter) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	search := "%" + filter.Search + "%"

	var total int64
	countQuery := `SELECT COUNT(*) FROM identity_users
		WHERE deleted_at IS NULL AND (name ILIKE $1 OR email ILIKE $1)`
	if err = s.conn.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	listQuery := `SELECT ` + userColumns + ` FROM identity_users
		WHERE deleted_at IS NULL AND (name ILIKE $1 OR email ILIKE $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := s.conn.Query(ctx, listQuery, search, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	users := make([]entity.User, 0, filter.Limit)
	for rows.Next() {
		user, errScan := s.scanUser(rows)
		if errScan != nil {
			err = errScan
			return nil, 0, s.mapError(err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return users, total, nil
}

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO identity_users (id, name, email, password, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = s.conn.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Role.String(), user.Status.String())

	err = s.mapError(err)
	return err
}

func (s *DB) UpdateUser(ctx context.Context, user entity.UpdateUser) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUser")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE identity_users
		SET name = $2, role = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := s.conn.Exec(ctx, query, user.ID, user.Name, user.Role.String(), user.Status.String())
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

func (s *DB) UpdateUserName(ctx context.Context, id int64, name string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserName")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE identity_users SET name = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`
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

func (s *DB) MarkUserDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkUserDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE identity_users
		SET status = 'inactive', deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
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
