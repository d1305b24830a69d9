package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "privfin/internal/errors"
	"privfin/internal/logger"
)

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool               `json:"success" example:"false"`
	Error   apperrors.AppError `json:"error"`
}

// respondData writes the success envelope around the given payload.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the failure envelope. If the error is an *AppError it
// uses the error's status, code, and message. Otherwise it logs the
// unexpected error and returns a generic internal server error.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
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
