package entity

import "time"

// DeliveryLog records one outbound notification attempt.
type DeliveryLog struct {
	ID        int64
	Channel   Channel
	Recipient string
	Subject   string
	Status    DeliveryStatus
	Detail    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateDeliveryLog struct {
	ID        int64
	Channel   Channel
	Recipient string
	Subject   string
	Status    DeliveryStatus
}

type UpdateDeliveryLog struct {
	ID     int64
	Status DeliveryStatus
	Detail *string
}
