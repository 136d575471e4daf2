package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err, "request_id", c.GetString("RequestID"))
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Unclassified errors never reach the client verbatim
		logger.Log.Error("Internal Server Error", "error", err, "request_id", c.GetString("RequestID"))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
