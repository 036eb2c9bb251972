// Package respond writes the uniform response envelope every report shares:
// {status: "success"|"error", data?, message?}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func write(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes a 200 success envelope around data.
func Success(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Status: "success", Data: data})
}

// SuccessMessage writes a 200 success envelope with a message alongside data.
func SuccessMessage(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusOK, envelope{Status: "success", Message: message, Data: data})
}

// Error writes an error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: "error", Message: message})
}
