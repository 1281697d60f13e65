package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message" example:"User not found"`
	Status  int    `json:"status" example:"404"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"User deleted successfully"`
}
