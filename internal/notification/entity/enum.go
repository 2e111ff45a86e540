package entity

import "strings"

type Channel int16

const (
	ChannelUnknown Channel = 0
	ChannelEmail   Channel = 1
)

func ChannelFromString(raw string) Channel {
	switch strings.TrimSpace(raw) {
	case "email":
		return ChannelEmail
	default:
		return ChannelUnknown
	}
}

func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "email"
	default:
		return "unknown"
	}
}

type DeliveryStatus int16

const (
	DeliveryStatusUnknown DeliveryStatus = 0
	DeliveryStatusPending DeliveryStatus = 1
	DeliveryStatusSent    DeliveryStatus = 2
	DeliveryStatusFailed  DeliveryStatus = 3
)

func DeliveryStatusFromString(raw string) DeliveryStatus {
	switch strings.TrimSpace(raw) {
	case "pending":
		return DeliveryStatusPending
	case "sent":
		return DeliveryStatusSent
	case "failed":
		return DeliveryStatusFailed
	default:
		return DeliveryStatusUnknown
	}
}

func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryStatusPending:
		return "pending"
	case DeliveryStatusSent:
		return "sent"
	case DeliveryStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
