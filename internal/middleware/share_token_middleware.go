package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
	sharejwt "github.com/ArowuTest/fakelotto-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

const (
	// DrawBundleKey is the context key holding the verified *models.DrawBundle
	DrawBundleKey = "drawBundle"
	// ShareTokenKey is the context key holding the verified token string
	ShareTokenKey = "shareToken"
)

// ShareTokenParser verifies share tokens
type ShareTokenParser interface {
	Parse(token string) (*models.DrawBundle, error)
}

// ShareTokenMiddleware verifies the share token taken from the :token path
// parameter, or from a Bearer Authorization header, and stores the bundle it
// carries under DrawBundleKey and the token under ShareTokenKey.
func ShareTokenMiddleware(parser ShareTokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		const bearerSchema = "Bearer "

		tokenString := c.Param("token")
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, bearerSchema) {
				tokenString = authHeader[len(bearerSchema):]
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Share token is required"})
			return
		}

		bundle, err := parser.Parse(tokenString)
		if err != nil {
			slog.Warn("Share token rejected", "error", err, "requestId", c.GetString(RequestIDKey))
			if errors.Is(err, sharejwt.ErrExpiredShareToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Share token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid share token"})
			}
			return
		}

		c.Set(DrawBundleKey, bundle)
		c.Set(ShareTokenKey, tokenString)
		c.Next()
	}
}
