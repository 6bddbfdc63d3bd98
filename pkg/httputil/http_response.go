package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteSuccess writes {"success": true, "message": message} merged with payload.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, payload map[string]any) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	body["message"] = message
	WriteJSONResponse(w, statusCode, body)
}
