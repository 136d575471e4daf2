package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape shared by every endpoint except verify-email
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// JSON sends body as-is
func JSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorBody{
		Error:   message,
		Details: details,
	})
}
