package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/employee-management-api/pkg/helpers"
	"github.com/oksasatya/employee-management-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the bearer token issued by the external identity provider
// and rejects tokens present on the Redis revocation list. It sets userID in
// the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		if rdb != nil {
			revoked, err := rdb.Exists(c.Request.Context(), "auth:revoked:"+claims.UserID).Result()
			if err == nil && revoked > 0 {
				resp := response.Error[any](c, http.StatusUnauthorized, "token revoked", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
				return
			}
			// fail-open on redis errors; signature validation already passed
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	// cookie fallback for browser clients
	if tok, err := c.Cookie("access_token"); err == nil {
		return tok
	}
	return ""
}
