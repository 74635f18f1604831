package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDKey = "request_id"

// RequestID tags each request with an id for log correlation. An incoming
// X-Request-ID header is trusted and passed through.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.Request.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
