package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AbortWithGatewayTimeout sends a 504 Gateway Timeout response and aborts the request.
// Used when the upstream generation service does not answer within its deadline.
func AbortWithGatewayTimeout(c *gin.Context, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, NewAPIError(message, details))
}
