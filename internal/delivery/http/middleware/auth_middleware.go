package middleware

import (
	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

// SessionAuth resolves the session cookie and stores the caller's identity
// in the gin context. Requests without a valid session are aborted with 401.
func SessionAuth(sessions domain.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(domain.SessionCookieName)
		if err != nil || raw == "" {
			c.Error(apperror.InvalidSession())
			c.Abort()
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), raw)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Next()
	}
}

// RequireRole lets through only callers whose role is one of roles. It must
// run after SessionAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.Error(apperror.Forbidden("You do not have access to this resource."))
		c.Abort()
	}
}
