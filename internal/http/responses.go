package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// encoding failures at this point can only be logged by the caller;
	// headers are already written
	_ = json.NewEncoder(w).Encode(payload)
}

func apiError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorViewModel{
		Status:  statusCode,
		Message: message,
	})
}

func apiErrorWithCode(w http.ResponseWriter, statusCode int, errorCode *int64, message string) {
	respondJSON(w, statusCode, ErrorViewModel{
		Status:    statusCode,
		ErrorCode: errorCode,
		Message:   message,
	})
}
