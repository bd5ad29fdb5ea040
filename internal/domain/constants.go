package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)

// Field length limits
const (
	MaxDescriptionLength        = 500
	MaxCancellationReasonLength = 500
)
