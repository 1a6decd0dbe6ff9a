package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// RequestID propagates the client's X-Request-ID or assigns a fresh one.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
