// Package response writes the storefront's JSON envelopes and error bodies.
package response

import (
	"encoding/json"
	"net/http"
)

// Collection is the envelope for list endpoints: the items plus their count,
// so clients do not have to measure the array themselves.
type Collection struct {
	Count int `json:"count"`
	Value any `json:"value"`
}

// ErrorDetail is the machine-readable error carried inside an error body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorBody wraps the detail under an "error" key so success and failure
// payloads can never be confused.
type errorBody struct {
	Error ErrorDetail `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// WriteCollection writes a list response wrapped in the collection envelope.
func WriteCollection(w http.ResponseWriter, status int, count int, value any) error {
	return WriteJSON(w, status, Collection{Count: count, Value: value})
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, status int, code, message string) error {
	return WriteJSON(w, status, errorBody{Error: ErrorDetail{Code: code, Message: message}})
}
