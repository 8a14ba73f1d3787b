package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Document writes a rendered document body with its content type.
func Document(c *gin.Context, contentType string, body []byte) {
	c.Set("documentBytes", len(body))
	c.Data(http.StatusOK, contentType, body)
}
