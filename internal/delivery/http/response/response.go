package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape the UI expects: a flat {"error": "..."} object.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 with the payload as-is. Handlers own their wire shapes.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
