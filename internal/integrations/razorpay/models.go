package razorpay

// Order is a payment order created at the gateway.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// orderRequest is the gateway order-creation payload.
type orderRequest struct {
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// ErrorResponse is the gateway error envelope.
type ErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
