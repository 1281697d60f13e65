package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jorism/userapi/internal/api/dto"
)

// ErrorHandlerMiddleware turns panics into the standard error body.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message: "An unexpected error occurred",
					Status:  http.StatusInternalServerError,
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
