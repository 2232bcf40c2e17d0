package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit caps the request body at maxBodyBytes. Oversized bodies surface
// as http.MaxBytesError from the JSON decoder, which handlers report as an
// invalid payload.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
