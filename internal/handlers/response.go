package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/services"
)

// statusByCode maps error codes to HTTP statuses. Unlisted codes are 500.
var statusByCode = map[string]int{
	services.CodeValidation:               http.StatusBadRequest,
	services.CodeInsufficientSOL:          http.StatusBadRequest,
	services.CodeInsufficientTokenBalance: http.StatusBadRequest,
	services.CodeNotFound:                 http.StatusNotFound,
	services.CodeDuplicateRequest:         http.StatusConflict,
	services.CodeNetworkCongested:         http.StatusServiceUnavailable,
}

// messageByCode holds fixed client messages. Other codes carry the error text.
var messageByCode = map[string]string{
	services.CodeDuplicateRequest:         "This withdrawal request has already been processed",
	services.CodeNetworkCongested:         "Network is congested, try again later",
	services.CodeInsufficientSOL:          "Insufficient SOL balance for transaction fees",
	services.CodeInsufficientTokenBalance: "Insufficient token balance",
	services.CodeNotFound:                 "Transaction not found",
	services.CodeInternal:                 "Internal server error",
}

func httpStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func errorMessage(code string, err error) string {
	if msg, ok := messageByCode[code]; ok {
		return msg
	}
	if code == services.CodeValidation {
		return "Validation error: " + err.Error()
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
