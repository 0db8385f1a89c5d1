package models

// Notification statuses delivered to the callback endpoint
const (
	NotifyConfirmed = "confirmed"
	NotifyFailed    = "failed"
)

// Notification is a terminal outcome to be delivered to the callback endpoint.
type Notification struct {
	RequestID      int64
	UserID         int64
	TransactionRef string
	Status         string // confirmed or failed
	Message        string // optional detail
}

// WebhookPayload is the JSON body posted to the callback endpoint.
type WebhookPayload struct {
	RequestID      int64  `json:"request_id"`
	UserID         int64  `json:"user_id"`
	TransactionID  string `json:"transaction_id"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	CallbackSecret string `json:"callback_secret"`
}

// OutcomeEvent is the terminal outcome published to Kafka.
type OutcomeEvent struct {
	EventID       string `json:"event_id"`       // EventID is a unique identifier of the event.
	RequestID     int64  `json:"request_id"`     // RequestID is the withdrawal request identifier.
	UserID        int64  `json:"user_id"`        // UserID is the owner reference.
	TransactionID string `json:"transaction_id"` // TransactionID is the ledger reference.
	Status        string `json:"status"`         // Status is confirmed or failed.
	Message       string `json:"message"`        // Message carries the failure detail.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix time (seconds) of the event.
}
