package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the fixed response shape returned by every endpoint:
// {status, success, errors, data}. Errors holds either a plain message or a
// field -> messages mapping; data holds the serialized entity or collection.
type Envelope struct {
	Status  int  `json:"status"`
	Success bool `json:"success"`
	Errors  any  `json:"errors"`
	Data    any  `json:"data"`
}

// NewEnvelope returns the default envelope: status 500, success false, with
// empty errors and data collections. Handlers mutate it before writing.
func NewEnvelope() *Envelope {
	return &Envelope{
		Status:  http.StatusInternalServerError,
		Success: false,
		Errors:  []any{},
		Data:    []any{},
	}
}

// WriteEnvelope writes env as the JSON body using env.Status as the HTTP
// status code.
func WriteEnvelope(w http.ResponseWriter, env *Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(env.Status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
