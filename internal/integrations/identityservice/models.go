package identityservice

// Identity is the resolved caller returned by the identity service.
type Identity struct {
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
	OwnerID int64  `json:"owner_id"`
}

// ErrorResponse error payload of the identity service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
