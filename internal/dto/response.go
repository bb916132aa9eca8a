package dto

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
}

// MessageResponse is a successful call with no payload.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
}

// NewErrorResponse builds the failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
