package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "privfin/internal/errors"
	"privfin/internal/logger"
)

// ErrorHandler returns a middleware that converts errors set on the Gin
// context into the JSON response envelope. AppErrors are returned at their
// declared status with their code and message; anything else is logged and
// answered with a generic 500 envelope so internal detail never leaks.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			c.JSON(appErr.StatusCode, gin.H{
				"success": false,
				"error":   appErr,
			})
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"success": false,
			"error":   apperrors.ErrInternalServer,
		})
	}
}
