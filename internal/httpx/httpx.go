// Package httpx contains the JSON response helpers shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/shoply/shoply-backend/internal/apperror"
)

type envelope struct {
	Status  string      `json:"status"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

// Error normalizes err into the service taxonomy and writes an error
// envelope carrying its kind, message, and status.
func Error(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(envelope{
		Status:  "error",
		Kind:    string(appErr.Kind),
		Message: appErr.Message,
	})
}
