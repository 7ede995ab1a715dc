package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
	"recruitment-portal/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code != http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("request failed",
			"error", err,
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		response.Error(c, http.StatusInternalServerError, "An unknown error occurred.", nil)
	}
}
