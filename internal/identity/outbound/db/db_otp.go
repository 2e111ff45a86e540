package db

import (
	"context"
	"time"

	"github.com/shelfwise/shelfwise/internal/identity/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func (s *DB) GetOneTimeCode(ctx context.Context, userID int64, code string, now time.Time) (_ *entity.OneTimeCode, err error) {
	ctx, span := s.startSpan(ctx, "GetOneTimeCode")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, user_id, code, expires_at, created_at
		FROM identity_one_time_codes
		WHERE user_id = $1 AND code = $2 AND expires_at > $3`

	var otc entity.OneTimeCode
	err = s.conn.QueryRow(ctx, query, userID, code, now).Scan(
		&otc.ID,
		&otc.UserID,
		&otc.Code,
		&otc.ExpiresAt,
		&otc.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &otc, nil
}

// ReplaceOneTimeCode removes all codes of the owning user and stores the new
// one in the same transaction, so at most one code is outstanding per user.
func (s *DB) ReplaceOneTimeCode(ctx context.Context, code entity.OneTimeCode) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceOneTimeCode")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.Begin(ctx)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	// Rollback after a successful commit is a no-op.
	//nolint:errcheck // ignore rollback error
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx,
		`DELETE FROM identity_one_time_codes WHERE user_id = $1`, code.UserID); err != nil {
		err = s.mapError(err)
		return err
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO identity_one_time_codes (id, user_id, code, expires_at) VALUES ($1, $2, $3, $4)`,
		code.ID, code.UserID, code.Code, code.ExpiresAt); err != nil {
		err = s.mapError(err)
		return err
	}

	err = s.mapError(tx.Commit(ctx))
	return err
}

// DeleteOneTimeCodesByUser removes every outstanding code of a user. Zero
// outstanding codes is not an error.
func (s *DB) DeleteOneTimeCodesByUser(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOneTimeCodesByUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `DELETE FROM identity_one_time_codes WHERE user_id = $1`, userID)

	err = s.mapError(err)
	return err
}

func (s *DB) DeleteOneTimeCode(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOneTimeCode")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM identity_one_time_codes WHERE id = $1`, id)
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
