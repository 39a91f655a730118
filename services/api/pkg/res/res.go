package res

import (
	"encoding/json"
	"net/http"
)

type okEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error"`
}

// Json writes {"success": true, "data": data}. A nil data is sent as null.
func Json(w http.ResponseWriter, data any, statusCode int) {
	write(w, okEnvelope{Success: true, Data: data}, statusCode)
}

// Error writes {"success": false, "error": msg}.
func Error(w http.ResponseWriter, msg string, statusCode int) {
	write(w, errEnvelope{Success: false, Error: msg}, statusCode)
}

// ErrorWithData is Error plus a "data" payload describing the failure.
func ErrorWithData(w http.ResponseWriter, msg string, data any, statusCode int) {
	write(w, errEnvelope{Success: false, Data: data, Error: msg}, statusCode)
}

func write(w http.ResponseWriter, body any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
