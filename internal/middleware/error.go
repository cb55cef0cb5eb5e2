package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "easybudget/internal/errors"
	"easybudget/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the JSON error envelope. AppErrors keep their code and
// message; any other error is logged and reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Named("http")

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}

		abortWithError(c, appErr)
	}
}
