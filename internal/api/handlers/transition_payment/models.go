package transition_payment

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// TransitionPaymentRequest HTTP request model.
type TransitionPaymentRequest struct {
	StatusID int64 `json:"statusId"`
}

// PaymentResponse HTTP response model.
type PaymentResponse struct {
	ID              int64   `json:"id"`
	OwnerID         int64   `json:"ownerId"`
	StatusID        int64   `json:"statusId"`
	Method          string  `json:"method"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
	Date            string  `json:"date"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromDomain converts a domain payment into the HTTP model.
func FromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		StatusID:        p.StatusID,
		Method:          p.Method,
		ReferenceNumber: p.ReferenceNumber,
		Date:            p.Date.Format(time.RFC3339),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}
