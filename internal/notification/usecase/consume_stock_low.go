package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelfwise/shelfwise/internal/notification/entity"
	"github.com/shelfwise/shelfwise/internal/pkg/mail"
)

const stockLowEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Low stock alert</h2>
  <p><strong>{{.item_name}}</strong> is running low.</p>
  <p>Current quantity: <strong>{{.quantity}}</strong> (threshold: {{.threshold}}).</p>
  <p>Restock it soon to avoid running out.</p>
  <p style="color: #888; font-size: 12px;">{{.company_name}} &middot; {{.year}}</p>
</body>
</html>`

type ConsumeStockLowInput struct {
	ItemID    int64  `validate:"required,gt=0"`
	ItemName  string `validate:"required"`
	Quantity  int64  `validate:"min=0"`
	Threshold int64  `validate:"required,gt=0"`
}

// ConsumeStockLow emails the configured admin address about an item that
// dropped below the stock threshold, recording the attempt in the delivery
// log. Errors are swallowed so the message is never redelivered for a
// permanently broken payload.
func (s *Usecase) ConsumeStockLow(ctx context.Context, in ConsumeStockLowInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeStockLow")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	adminEmail := s.cfg.GetString("modules.notification.admin_email")
	if adminEmail == "" {
		slog.WarnContext(ctx, "admin email not configured, skipping stock low notification", "item_id", in.ItemID)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["item_name"] = in.ItemName
	data["quantity"] = in.Quantity
	data["threshold"] = in.Threshold

	body, err := s.renderTemplate("stock_low", stockLowEmailTemplate, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render stock low email", "item_id", in.ItemID, "error", err)
		return nil
	}

	subject := fmt.Sprintf("Low stock alert: %s", in.ItemName)

	logID := s.uid.Generate()
	if err := s.repoDB.CreateDeliveryLog(ctx, entity.CreateDeliveryLog{
		ID:        logID,
		Channel:   entity.ChannelEmail,
		Recipient: adminEmail,
		Subject:   subject,
		Status:    entity.DeliveryStatusPending,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create delivery log", "item_id", in.ItemID, "error", err)
		return nil
	}

	mailErr := s.sendWithRetry(ctx, mail.Message{
		To:       []string{adminEmail},
		Subject:  subject,
		HTMLBody: body,
	})
	if mailErr == nil {
		if err := s.repoDB.UpdateDeliveryLogStatus(ctx, entity.UpdateDeliveryLog{
			ID:     logID,
			Status: entity.DeliveryStatusSent,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo update delivery log status sent", "log_id", logID, "error", err)
		}
		return nil
	}

	detail := mailErr.Error()
	if err := s.repoDB.UpdateDeliveryLogStatus(ctx, entity.UpdateDeliveryLog{
		ID:     logID,
		Status: entity.DeliveryStatusFailed,
		Detail: &detail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update delivery log status failed", "log_id", logID, "error", err)
	}

	slog.ErrorContext(ctx, "failed to send stock low email", "log_id", logID, "item_id", in.ItemID, "error", mailErr)

	return nil
}
