package middleware

import (
	"net/http"
	"os"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards catalog mutations with a shared admin key.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Status: 401, Msg: "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
