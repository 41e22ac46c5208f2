package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
)

// MsgBodyTooLarge is returned when a request body exceeds the configured limit
const MsgBodyTooLarge = "Request body exceeds maximum allowed size"

// BodyLimit rejects bodies declared larger than maxBytes and caps the rest
// while they are read. A body that turns out too large fails to decode with
// *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(MsgBodyTooLarge))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
