package http_request_id_middleware

import (
	http_common "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIncomingLength caps ids forwarded by a proxy.
const maxIncomingLength = 128

// RequestID keeps an incoming X-Request-ID or assigns a fresh uuid, then
// echoes it back and stores it on the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(http_common.RequestIDHeader)
		if id == "" || len(id) > maxIncomingLength {
			id = uuid.NewString()
		}

		http_common.SetRequestID(c, id)
		c.Header(http_common.RequestIDHeader, id)
		c.Next()
	}
}
