package entity

// SourceType records how an item entered the inventory.
type SourceType int

const (
	SourceTypeUnknown SourceType = iota
	SourceTypePurchase
	SourceTypeTransfer
	SourceTypeDonation
	SourceTypeReturn
	SourceTypeOther
)

// SourceTypeFromString parses the database/API representation of a source.
func SourceTypeFromString(s string) SourceType {
	switch s {
	case "purchase":
		return SourceTypePurchase
	case "transfer":
		return SourceTypeTransfer
	case "donation":
		return SourceTypeDonation
	case "return":
		return SourceTypeReturn
	case "other":
		return SourceTypeOther
	default:
		return SourceTypeUnknown
	}
}

func (s SourceType) String() string {
	switch s {
	case SourceTypePurchase:
		return "purchase"
	case SourceTypeTransfer:
		return "transfer"
	case SourceTypeDonation:
		return "donation"
	case SourceTypeReturn:
		return "return"
	case SourceTypeOther:
		return "other"
	default:
		return "unknown"
	}
}
