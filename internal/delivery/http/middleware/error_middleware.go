package middleware

import (
	"errors"
	"net/http"

	"go-jobcrawler-backend/internal/delivery/http/response"
	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/pkg/apperror"
	"go-jobcrawler-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed",
						"error", err,
						"path", c.FullPath(),
						"request_id", c.GetString(string(domain.KeyRequestID)),
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled error",
					"error", err,
					"path", c.FullPath(),
					"request_id", c.GetString(string(domain.KeyRequestID)),
				)
				response.Error(c, http.StatusInternalServerError, err.Error())
			}
		}
	}
}
