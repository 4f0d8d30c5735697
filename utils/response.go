package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "resource not found.",
	http.StatusUnprocessableEntity: "unprocessible entity",
	http.StatusInternalServerError: "internal server error",
}

// ErrorEnvelope is the body written for every failed request
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// ErrorMessage returns the fixed message for status. Statuses without one
// are reported as internal server errors.
func ErrorMessage(status int) (int, string) {
	if message, ok := errorMessages[status]; ok {
		return status, message
	}
	return http.StatusInternalServerError, errorMessages[http.StatusInternalServerError]
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("WriteJSON: failed to encode response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, status int) {
	status, message := ErrorMessage(status)
	WriteJSON(w, status, ErrorEnvelope{
		Success: false,
		Error:   status,
		Message: message,
	})
}
