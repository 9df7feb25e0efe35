package handlers

import (
	"net/http"
	"strings"

	"registration-service/internal/models"
	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const (
	localClaims = "claims"
	authCookie  = "auth_token"
)

type Middleware struct {
	authService *services.AuthService
}

func NewMiddleware(authService *services.AuthService) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// RequireAuth authenticates the request from the session cookie or a
// bearer token and stores the claims for downstream handlers.
func (m *Middleware) RequireAuth(c fiber.Ctx) error {
	tokenString := c.Cookies(authCookie)
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}
	}

	if tokenString == "" {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("MISSING_TOKEN", "Authentication required"))
	}

	claims, err := m.authService.Authenticate(c.Context(), tokenString)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("INVALID_TOKEN", "Token validation failed"))
	}

	c.Locals(localClaims, claims)
	return c.Next()
}

// RequireRole gates a route group to one role. Must run after RequireAuth.
func (m *Middleware) RequireRole(role models.UserRole) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return c.Status(http.StatusUnauthorized).JSON(
				utils.CreateErrorResponse("MISSING_TOKEN", "Authentication required"))
		}
		if claims.Role != string(role) {
			return c.Status(http.StatusForbidden).JSON(
				utils.CreateErrorResponse("FORBIDDEN", "Insufficient permissions"))
		}
		return c.Next()
	}
}

// ClaimsFromContext returns the authenticated claims, or nil when the
// request did not pass RequireAuth.
func ClaimsFromContext(c fiber.Ctx) *models.Claims {
	claims, _ := c.Locals(localClaims).(*models.Claims)
	return claims
}
