package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "rms/internal/errors"
	"rms/internal/logger"
)

// Response is the envelope returned by every endpoint: success flag, payload,
// human-readable message, and an error detail string on unexpected failures.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
}

// respondSuccess writes a success envelope with the given status code.
func respondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondWithError writes a failure envelope. AppErrors map to their status
// code and message; for wrapped internal errors the underlying failure text
// is surfaced in the error field and logged. Anything else is logged and
// returned as a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp := Response{
			Success: false,
			Message: appErr.Message,
		}
		if appErr.Internal != nil {
			resp.Error = appErr.Internal.Error()
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, resp)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, Response{
		Success: false,
		Message: apperrors.ErrInternalServer.Message,
		Error:   err.Error(),
	})
}
