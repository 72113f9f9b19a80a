package dto

// OrderCreatedResponse confirms a successful order submission
type OrderCreatedResponse struct {
	Message    string `json:"message"`
	SapOrderID int    `json:"sapOrderId"`
}

// ErrorResponse is the wire shape for every failed request. Error carries a
// short classification, Details the underlying cause for operators.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
