package mq

import (
	"context"
	"encoding/json"

	"github.com/shelfwise/shelfwise/internal/inventory/usecase"
	"github.com/shelfwise/shelfwise/internal/pkg/instrument"
	"github.com/shelfwise/shelfwise/internal/pkg/messaging"
	"github.com/shelfwise/shelfwise/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishStockLow(ctx context.Context, msg usecase.StockLowEvent) error {
	ctx, span := m.ins.Tracer("inventory.outbound.mq").Start(ctx, "PublishStockLow")
	defer span.End()

	body, err := json.Marshal(event.StockLowMessage{
		ItemID:    msg.ItemID,
		ItemName:  msg.ItemName,
		Quantity:  msg.Quantity,
		Threshold: msg.Threshold,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.StockLowDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
