package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

// bindJSON decodes the body and reports malformed JSON as invalid form data.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.InvalidFormData("Malformed JSON in request body."))
		return false
	}
	return true
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyUserID))
}

func setSessionCookie(c *gin.Context, session domain.SessionData, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
