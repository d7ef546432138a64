package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// errorResponse is the wire shape for every failure: {"error": message}.
// The dashboard client reads the error key directly.
type errorResponse struct {
	status  int
	Message string `json:"error"`
}

func (e *errorResponse) Error() string {
	return e.Message
}

func (e *errorResponse) GetStatus() int {
	return e.status
}

// ContentType keeps errors as plain application/json instead of
// application/problem+json.
func (e *errorResponse) ContentType(string) string {
	return "application/json"
}

func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		if message == "" {
			message = http.StatusText(status)
		}
		return &errorResponse{status: status, Message: message}
	}
}
