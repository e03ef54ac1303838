package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

// ErrorMiddleware converts errors pushed via c.Error into one uniform
// {error, message} JSON body. Handlers never write error bodies themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= 500 {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Request failed with unclassified error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(apperror.ToHTTPStatus(err), gin.H{
			"error":   "internal server error",
			"message": "An internal server error occurred",
		})
	}
}
