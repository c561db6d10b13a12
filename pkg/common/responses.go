package common

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of confirmation and not-found responses
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of the health and readiness probes
type StatusResponse struct {
	Status string `json:"status"`
	Todos  *int   `json:"todos,omitempty"`
}

// RespondJSON sends data as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// RespondMessage sends a {"message": ...} body
func RespondMessage(w http.ResponseWriter, status int, message string) error {
	return RespondJSON(w, status, MessageResponse{Message: message})
}
