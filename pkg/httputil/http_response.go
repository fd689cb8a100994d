package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ClientError is the validation-failure body. It is deliberately written
// with a 200 status: callers of this service inspect the body, not the
// status code.
type ClientError struct {
	Error string `json:"error"`
}

type FaultResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteClientError(w http.ResponseWriter, message string) {
	WriteJSONResponse(w, http.StatusOK, ClientError{Error: message})
}

// WriteFaultResponse reports unhandled store/transport faults with a real
// error status. No retry hint is given, the failure is fatal for the
// request only.
func WriteFaultResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := FaultResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
