package http_access_middleware

import (
	"log/slog"
	"net/http"

	http_common "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
)

const ReadOnlyMode = "RO"

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// ReadOnlyBadGatewayMiddleware turns every image config write into a 502 on
// replicas started with HTTP_MODE=RO. The websocket upgrade is a GET and
// stays open.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	if mode != ReadOnlyMode {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		slog.Warn("write rejected on read-only instance",
			slog.String("request_id", http_common.RequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusBadGateway,
			http_common.NewErrorResponse(c, "write operations are disabled on a read-only instance"))
	}
}
