package constants

// Redis key formats
const (
	KeyPaymentIntake = "payment:intake:%s" // Format: payment:intake:{tran_id}
	KeyPaymentStatus = "payment:status:%s" // Format: payment:status:{tran_id}
)
