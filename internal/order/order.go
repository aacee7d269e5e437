package order

// Request is a validated order submission. It is never stored.
type Request struct {
	Email         string
	WalletAddress string
	AmountETH     float64
}

// Result is the body returned by the order endpoint.
type Result struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Payload is a decoded JSON request body. A key that is absent from the map was not submitted,
// which is distinct from a key submitted with a null value.
type Payload map[string]any

const (
	FieldEmail         = "email"
	FieldWalletAddress = "walletAddress"
	FieldAmountETH     = "amountETH"
)
