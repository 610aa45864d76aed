// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response body shape shared by all endpoints.
type Envelope struct {
	Status bool   `json:"status"`
	Detail string `json:"detail"`
	Data   any    `json:"data,omitempty"`
}

// ListEnvelope extends Envelope with the owner's total item count for
// paginated listings.
type ListEnvelope struct {
	Status     bool   `json:"status"`
	Detail     string `json:"detail"`
	TotalCount int64  `json:"total_count"`
	Data       any    `json:"data"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, code int, detail string, data any) {
	JSON(w, code, Envelope{Status: true, Detail: detail, Data: data})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, code int, detail string) {
	JSON(w, code, Envelope{Status: false, Detail: detail})
}
