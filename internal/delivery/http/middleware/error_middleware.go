package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
)

// ErrorHandler converts errors pushed onto the gin context into the uniform
// response shape. Anything that is not an AppError is logged with full
// detail server-side and masked for the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
				}
				response.Fail(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unexpected error", "path", c.FullPath(), "error", err)
				response.Fail(c, http.StatusInternalServerError, "Internal server error")
			}
		}
	}
}
