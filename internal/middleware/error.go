package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "rms/internal/errors"
	"rms/internal/logger"
)

// errorResponse mirrors the handler envelope for failures that surface
// through the Gin error list instead of a handler's own respond call.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent envelope responses. It is a safety net for errors
// that handlers attach via c.Error rather than handling themselves.
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
			resp := errorResponse{Message: appErr.Message}
			if appErr.Internal != nil {
				resp.Error = appErr.Internal.Error()
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			c.JSON(appErr.StatusCode, resp)
			return
		}

		// Unexpected error: log full details, surface the failure text
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, errorResponse{
			Message: apperrors.ErrInternalServer.Message,
			Error:   err.Error(),
		})
	}
}
