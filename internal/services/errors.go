package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/facades"
)

// Error codes reported to API clients
const (
	CodeDuplicateRequest         = "duplicate_request"
	CodeValidation               = "validation_error"
	CodeInsufficientSOL          = "insufficient_sol"
	CodeInsufficientTokenBalance = "insufficient_token_balance"
	CodeNetworkCongested         = "network_congested"
	CodeInvalidAddress           = "invalid_address"
	CodeTransactionExpired       = "transaction_expired"
	CodeTimeout                  = "timeout_error"
	CodeTransactionError         = "transaction_error"
	CodeNotFound                 = "transaction_not_found"
	CodeInternal                 = "internal_error"
)

var (
	// ErrDuplicateRequest is returned when a request id is already in flight.
	ErrDuplicateRequest = errors.New("withdrawal request has already been processed")
	// ErrValidation is returned for malformed withdrawal payloads.
	ErrValidation = errors.New("invalid withdrawal request")
	// ErrNotFound is returned when no record exists for a request id.
	ErrNotFound = errors.New("transaction not found")
	// ErrNetworkCongested is returned when the congestion gate rejects a request.
	ErrNetworkCongested = errors.New("network is congested, try again later")
	// ErrInsufficientSOL is returned when the sender cannot cover network fees.
	ErrInsufficientSOL = errors.New("insufficient SOL balance for transaction fees")
	// ErrInsufficientTokenBalance is returned when the sender holds too few tokens.
	ErrInsufficientTokenBalance = errors.New("insufficient token balance")
	// ErrRefNotStored is returned when a submitted transfer's reference could not be attached to its record.
	ErrRefNotStored = errors.New("transaction reference not stored")
)

// CodedError attaches a client-facing error code to a cause.
type CodedError struct {
	Code string
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

func coded(code string, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ErrorCode classifies err into one of the client-facing error codes.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var codedErr *CodedError
	if errors.As(err, &codedErr) {
		return codedErr.Code
	}

	var expired *facades.ExpiredError
	switch {
	case errors.Is(err, ErrDuplicateRequest):
		return CodeDuplicateRequest
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNetworkCongested):
		return CodeNetworkCongested
	case errors.Is(err, ErrInsufficientSOL), errors.Is(err, facades.ErrInsufficientSOL):
		return CodeInsufficientSOL
	case errors.Is(err, ErrInsufficientTokenBalance), errors.Is(err, facades.ErrInsufficientTokenBalance):
		return CodeInsufficientTokenBalance
	case errors.Is(err, facades.ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.As(err, &expired):
		return CodeTransactionExpired
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	default:
		return CodeInternal
	}
}

// submissionCode classifies a ledger submission failure. Unknown causes are
// reported as generic transaction errors rather than internal ones.
func submissionCode(err error) string {
	if code := ErrorCode(err); code != CodeInternal {
		return code
	}
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return CodeTimeout
	}
	return CodeTransactionError
}
