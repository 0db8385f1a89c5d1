package models

// Response statuses returned to API clients
const (
	ResponseSuccess    = "success"
	ResponseProcessing = "processing"
	ResponseFailed     = "failed"
)

// WithdrawRequest represents the JSON body for submitting a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Client-supplied idempotency key
	// required: true
	// example: 123
	RequestID int64 `json:"request_id"`

	// Owner reference
	// required: true
	// example: 456
	UserID int64 `json:"user_id"`

	// Amount in token units, as a decimal string
	// required: true
	// example: 10.5
	Amount string `json:"amount"`

	// Recipient wallet address
	// required: true
	// example: 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin
	RecipientAddress string `json:"recipient_address"`

	// Token mint address
	// required: true
	// example: 8rbpFAM5BftdA3gouobPDih4ZxVXtTzHh7F88yARRGSZ
	TokenAddress string `json:"token_address"`
}

// WithdrawResponse represents the outcome of a withdrawal submission
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// success, processing or failed
	// example: success
	Status string `json:"status"`

	// Human readable message
	// example: Withdrawal request submitted successfully
	Message string `json:"message"`

	// Ledger transaction reference
	// example: 5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW
	TransactionID string `json:"transaction_id,omitempty"`

	// Machine readable error code
	// example: insufficient_token_balance
	ErrorCode string `json:"error_code,omitempty"`

	// Live ledger outcome or stored status
	// example: pending
	CurrentStatus string `json:"current_status,omitempty"`
}

// StatusResponse represents the stored state of a withdrawal
// swagger:model StatusResponse
type StatusResponse struct {
	// Withdrawal status
	// example: processing
	Status string `json:"status"`

	// Ledger transaction reference
	TransactionID string `json:"transaction_id,omitempty"`

	// Failure detail, empty on success
	Message string `json:"message"`

	// Creation time (RFC3339)
	Timestamp string `json:"timestamp"`

	// Last update time (RFC3339)
	UpdatedAt string `json:"updated_at"`
}

// RecheckResult is the outcome of re-checking one stale withdrawal
// swagger:model RecheckResult
type RecheckResult struct {
	// Withdrawal request id
	RequestID int64 `json:"request_id"`

	// completed, failed, still_pending or error
	Status string `json:"status"`

	// Whether the stored record changed
	Updated bool `json:"updated"`

	// Error detail when the check itself failed
	Error string `json:"error,omitempty"`
}

// RecheckResponse represents the summary of a reconciliation sweep
// swagger:model RecheckResponse
type RecheckResponse struct {
	// Sweep status
	// example: success
	Status string `json:"status"`

	// Human readable message
	Message string `json:"message"`

	// Number of stale withdrawals inspected
	Count int `json:"count"`

	// Per-record outcomes
	Results []RecheckResult `json:"results,omitempty"`
}

// ErrorResponse represents a request rejected before reaching the pipeline
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always failed
	// example: failed
	Status string `json:"status"`

	// Human readable message
	// example: invalid token
	Message string `json:"message"`

	// Machine readable error code
	// example: unauthorized
	ErrorCode string `json:"error_code"`
}

// HealthResponse represents the liveness probe body
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}
