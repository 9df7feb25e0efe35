package handlers

import (
	"log/slog"
	"net/http"

	"registration-service/internal/models"
	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
	Middleware       *Middleware
}

func NewDashboardHandler(dashboardService *services.DashboardService, middleware *Middleware) *DashboardHandler {
	return &DashboardHandler{
		DashboardService: dashboardService,
		Middleware:       middleware,
	}
}

func (h *DashboardHandler) Register(app *fiber.App) {
	dashboardGr := app.Group("/api/dashboard", h.Middleware.RequireAuth)

	// Agent routes
	dashboardGr.Get("/stats", h.GetAgentStats)

	// Admin routes
	adminGr := dashboardGr.Group("/admin", h.Middleware.RequireRole(models.RoleAdmin))
	adminGr.Get("/stats", h.GetOverallStats)
	adminGr.Get("/agents", h.GetAgentPerformance)
	adminGr.Get("/products", h.GetProductPopularity)
}

func (h *DashboardHandler) GetAgentStats(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)

	stats, err := h.DashboardService.GetAgentStats(claims.UserID)
	if err != nil {
		slog.Error("failed to get agent stats", "user_id", claims.UserID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get stats"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(stats))
}

func (h *DashboardHandler) GetOverallStats(c fiber.Ctx) error {
	stats, err := h.DashboardService.GetOverallStats()
	if err != nil {
		slog.Error("failed to get overall stats", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get stats"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(stats))
}

func (h *DashboardHandler) GetAgentPerformance(c fiber.Ctx) error {
	results, err := h.DashboardService.GetAgentPerformance()
	if err != nil {
		slog.Error("failed to get agent performance", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get agent performance"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(results))
}

func (h *DashboardHandler) GetProductPopularity(c fiber.Ctx) error {
	results, err := h.DashboardService.GetProductPopularity()
	if err != nil {
		slog.Error("failed to get product popularity", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get product popularity"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(results))
}
