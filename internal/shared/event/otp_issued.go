package event

const OTPIssuedDestination string = "otp_issued"

type OTPIssuedMessage struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}
