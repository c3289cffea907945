package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/auth"
	"github.com/gin-gonic/gin"
)

func bodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// bearerIdentity resolves the bearer token, if any, into the request
// context. Missing or unresolvable tokens leave the request anonymous.
func bearerIdentity(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if token, ok := strings.CutPrefix(header, common.BearerPrefix); ok && authn != nil {
			ctx := c.Request.Context()
			if id := authn.Authenticate(ctx, strings.TrimSpace(token)); id != nil {
				c.Request = c.Request.WithContext(auth.WithIdentity(ctx, id))
			}
		}
		c.Next()
	}
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if id := auth.IdentityFromContext(ctx); id != nil {
			args = append(args, "username", id.Username)
		}

		l.Info(ctx, "request", args...)
	}
}
