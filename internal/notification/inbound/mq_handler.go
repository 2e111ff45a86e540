package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shelfwise/shelfwise/internal/notification/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/messaging"
	"github.com/shelfwise/shelfwise/internal/pkg/uid"
	"github.com/shelfwise/shelfwise/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) StockLowNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "StockLowNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: stock low notification", "msg_body", string(body))

	var payload event.StockLowMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of stock low notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeStockLow(ctx, usecase.ConsumeStockLowInput{
		ItemID:    payload.ItemID,
		ItemName:  payload.ItemName,
		Quantity:  payload.Quantity,
		Threshold: payload.Threshold,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume stock low", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
