package domain

import "time"

// Payment status ids match the payment_statuses lookup table.
const (
	PaymentPending    int64 = 1
	PaymentProcessing int64 = 2
	PaymentCompleted  int64 = 3
	PaymentFailed     int64 = 4
)

// paymentTransitions is the complete transition table. COMPLETED and
// FAILED have no outgoing edges; any pair not listed here is rejected.
var paymentTransitions = map[int64][]int64{
	PaymentPending:    {PaymentProcessing, PaymentCompleted, PaymentFailed},
	PaymentProcessing: {PaymentCompleted, PaymentFailed},
}

// CanTransitionPayment reports whether a payment may move from one status
// to another.
func CanTransitionPayment(from, to int64) bool {
	for _, allowed := range paymentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentStatusTerminal reports whether the status has no outgoing edges.
func PaymentStatusTerminal(status int64) bool {
	return len(paymentTransitions[status]) == 0 && ValidPaymentStatus(status)
}

// ValidPaymentStatus reports whether the id belongs to a known status.
func ValidPaymentStatus(status int64) bool {
	switch status {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Payment is a payment record owned by a resident. StatusID is written
// exclusively through the payment transition use case.
type Payment struct {
	ID              int64
	OwnerID         int64
	StatusID        int64
	Method          string
	ReferenceNumber *string
	Date            time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
