package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"registration-service/internal/models"
	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	AuthService *services.AuthService
	Middleware  *Middleware
	SessionTTL  time.Duration
}

func NewAuthHandler(authService *services.AuthService, middleware *Middleware, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Middleware:  middleware,
		SessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) Register(app *fiber.App) {
	authGr := app.Group("/api/auth")

	authGr.Post("/login", h.Login)
	authGr.Post("/logout", h.Logout, h.Middleware.RequireAuth)
	authGr.Get("/me", h.Me, h.Middleware.RequireAuth)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse login request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", "Invalid login request"))
	}

	resp, err := h.AuthService.Login(c.Context(), &req)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("LOGIN_FAILED", "Invalid email or password"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    resp.Token,
		Expires:  time.Now().Add(h.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(resp))
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("MISSING_TOKEN", "Authentication required"))
	}

	if err := h.AuthService.Logout(c.Context(), claims.SessionID); err != nil {
		slog.Error("failed to log out", "session_id", claims.SessionID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to log out"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(nil))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return c.Status(http.StatusUnauthorized).JSON(
			utils.CreateErrorResponse("MISSING_TOKEN", "Authentication required"))
	}

	user, err := h.AuthService.GetCurrentUser(c.Context(), claims.UserID)
	if err != nil {
		slog.Error("failed to load current user", "user_id", claims.UserID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to load user"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(user))
}
