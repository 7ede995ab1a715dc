package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/activity"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// RequestID tags the request with the caller's id when it looks like a UUID,
// otherwise with a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestMeta copies the client address, user agent and request id into the
// request context so activity records can carry them.
func RequestMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := activity.Meta{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			RequestID: c.GetString(string(domain.KeyRequestID)),
		}
		c.Set(string(domain.KeyClientIP), meta.IP)
		c.Set(string(domain.KeyUserAgent), meta.UserAgent)
		c.Request = c.Request.WithContext(activity.WithMeta(c.Request.Context(), meta))
		c.Next()
	}
}
