package mq

import (
	"context"
	"encoding/json"

	"github.com/shelfwise/shelfwise/internal/identity/usecase"
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

func (m *Messaging) PublishOTPIssued(ctx context.Context, msg usecase.OTPIssuedEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishOTPIssued")
	defer span.End()

	body, err := json.Marshal(event.OTPIssuedMessage{
		UserID:    msg.UserID,
		Email:     msg.Email,
		ExpiresAt: msg.ExpiresAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.OTPIssuedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
