package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/middleware"
	"github.com/sakmpar/social-blog/internal/models"
)

// currentClaims returns the JWT claims stored by the auth middleware, or
// nil on anonymous requests.
func currentClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get(middleware.ContextKeyUser).(*models.JwtCustomClaims)
	return claims
}

// currentUserID returns the authenticated user's ID, or 0 when anonymous.
func currentUserID(c echo.Context) uint {
	if claims := currentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
