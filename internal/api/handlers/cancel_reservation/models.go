package cancel_reservation

// CancelReservationRequest HTTP request model.
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// CancelReservationResponse HTTP response model.
type CancelReservationResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
