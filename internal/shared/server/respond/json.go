package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the payload as a 200 JSON body. Every success in this API
// is a 200; failures go through Error.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
