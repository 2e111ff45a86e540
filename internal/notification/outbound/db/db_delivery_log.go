package db

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/notification/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/goerror"
)

func (s *DB) CreateDeliveryLog(ctx context.Context, data entity.CreateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateDeliveryLog")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO notification_delivery_logs (id, channel, recipient, subject, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = s.conn.Exec(ctx, query,
		data.ID, data.Channel.String(), data.Recipient, data.Subject, data.Status.String())

	err = s.mapError(err)
	return err
}

func (s *DB) UpdateDeliveryLogStatus(ctx context.Context, data entity.UpdateDeliveryLog) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateDeliveryLogStatus")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE notification_delivery_logs
		SET status = $2, detail = $3, updated_at = NOW()
		WHERE id = $1`
	tag, err := s.conn.Exec(ctx, query, data.ID, data.Status.String(), data.Detail)
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
