package http_common

import "github.com/gin-gonic/gin"

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func NewErrorResponse(ctx *gin.Context, message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		RequestID: RequestID(ctx),
	}
}

func SetRequestID(ctx *gin.Context, id string) {
	ctx.Set(requestIDKey, id)
}

// RequestID is empty when the request id middleware is not installed.
func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
