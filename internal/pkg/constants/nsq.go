package constants

// NSQ topics
const (
	// Published on every transaction status overwrite
	TopicPaymentStatus = "payment.status"
)
