package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with. Data is omitted on
// errors and on confirmations that carry no payload.
type Response struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// WriteJSON writes a bare JSON response without the envelope. Used by the
// health probes, whose shape monitoring systems expect as-is.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	writeEnvelope(w, code, Response{
		Status:     "success",
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// WriteError writes an error envelope. Data is never attached to errors.
func WriteError(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, code, Response{
		Status:     "error",
		StatusCode: code,
		Message:    message,
	})
}

func writeEnvelope(w http.ResponseWriter, code int, v Response) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses that carry tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
