package event

const StockLowDestination string = "stock_low"
const StockLowConsumerNotification string = "stock_low_notification"

type StockLowMessage struct {
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
}
