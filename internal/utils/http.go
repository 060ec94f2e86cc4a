package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secret-notes/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.PasswordStateResponse{State: "password_set"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse]. A positive retryAfter (in
// seconds) is also sent as the Retry-After header.
func WriteError(w http.ResponseWriter, statusCode int, message string, retryAfter int64) {
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
	}
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message, RetryAfter: retryAfter}, statusCode)
}
