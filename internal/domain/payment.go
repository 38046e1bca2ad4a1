package domain

// PaymentOutcome is the three-valued result of a payment authorization.
// A business-level "no" is an outcome, never an error; gateways only return
// errors for transport-level failures.
type PaymentOutcome string

const (
	PaymentApproved PaymentOutcome = "APPROVED"
	PaymentRejected PaymentOutcome = "REJECTED"
	PaymentPending  PaymentOutcome = "PENDING"
)

// PaymentType selects which gateway variant authorizes a checkout.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypePix        PaymentType = "PIX"
)
