package middleware

import (
	"log/slog"
	"net/http"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				log.Error("request failed",
					"request_id", response.RequestID(c),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		log.Error("unhandled error",
			"request_id", response.RequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		internal := apperror.Internal(err)
		response.Error(c, internal.Code, internal.Message)
	}
}
