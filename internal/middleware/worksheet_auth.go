package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
	"github.com/noah-isme/abitur-api/pkg/response"
)

// ContextWorksheetKey is the gin context key storing worksheet token claims.
const ContextWorksheetKey = "worksheetClaims"

// TokenValidator parses worksheet access tokens.
type TokenValidator interface {
	Validate(token string) (*models.WorksheetClaims, error)
}

// WorksheetAuth requires a bearer token scoped to the worksheet named by the :id path parameter.
func WorksheetAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if claims.WorksheetID != c.Param("id") {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "token does not grant access to this worksheet"))
			c.Abort()
			return
		}

		c.Set(ContextWorksheetKey, claims)
		c.Next()
	}
}

// WorksheetClaims returns the claims attached by WorksheetAuth.
func WorksheetClaims(c *gin.Context) *models.WorksheetClaims {
	value, exists := c.Get(ContextWorksheetKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.WorksheetClaims)
	if !ok {
		return nil
	}
	return claims
}
