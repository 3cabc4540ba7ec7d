package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/eatwithchiso/service-booking/internal/common/response"
)

// APIKeyHeader is the header checked by APIKeyMiddleware.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware rejects requests whose X-API-Key does not match key.
// An empty key leaves the routes open.
func APIKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			response.Error(c, domain.NewUnauthorizedError("invalid API key"))
			c.Abort()
			return
		}
		c.Next()
	}
}
