package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionPayment(t *testing.T) {
	tests := []struct {
		name     string
		from     int64
		to       int64
		expected bool
	}{
		{"pending to processing", PaymentPending, PaymentProcessing, true},
		{"pending to completed", PaymentPending, PaymentCompleted, true},
		{"pending to failed", PaymentPending, PaymentFailed, true},
		{"processing to completed", PaymentProcessing, PaymentCompleted, true},
		{"processing to failed", PaymentProcessing, PaymentFailed, true},
		{"processing back to pending", PaymentProcessing, PaymentPending, false},
		{"completed is terminal", PaymentCompleted, PaymentPending, false},
		{"completed to failed", PaymentCompleted, PaymentFailed, false},
		{"failed is terminal", PaymentFailed, PaymentPending, false},
		{"failed to completed", PaymentFailed, PaymentCompleted, false},
		{"self transition rejected", PaymentPending, PaymentPending, false},
		{"unknown source rejected", 99, PaymentCompleted, false},
		{"unknown target rejected", PaymentPending, 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransitionPayment(tt.from, tt.to))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.False(t, PaymentStatusTerminal(PaymentPending))
	assert.False(t, PaymentStatusTerminal(PaymentProcessing))
	assert.True(t, PaymentStatusTerminal(PaymentCompleted))
	assert.True(t, PaymentStatusTerminal(PaymentFailed))
	assert.False(t, PaymentStatusTerminal(99))
}

func TestValidPaymentStatus(t *testing.T) {
	for id := int64(1); id <= 4; id++ {
		assert.True(t, ValidPaymentStatus(id))
	}
	assert.False(t, ValidPaymentStatus(0))
	assert.False(t, ValidPaymentStatus(5))
}
