package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"registration-service/internal/models"
	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type LeadHandler struct {
	LeadService *services.LeadService
	Middleware  *Middleware
}

func NewLeadHandler(leadService *services.LeadService, middleware *Middleware) *LeadHandler {
	return &LeadHandler{
		LeadService: leadService,
		Middleware:  middleware,
	}
}

func (h *LeadHandler) Register(app *fiber.App) {
	leadGr := app.Group("/api/leads")

	// Capture is public; the rest needs a logged-in agent or admin
	leadGr.Post("/", h.CaptureLead)
	leadGr.Get("/", h.GetLeads, h.Middleware.RequireAuth)
	leadGr.Patch("/:id/assign", h.AssignLead, h.Middleware.RequireAuth)
	leadGr.Patch("/:id/status", h.UpdateLeadStatus, h.Middleware.RequireAuth, h.Middleware.RequireRole(models.RoleAdmin))
}

func (h *LeadHandler) CaptureLead(c fiber.Ctx) error {
	var req models.CreateLeadRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse lead request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("VALIDATION_FAILED", errs[0].Message))
	}

	lead, err := h.LeadService.CaptureLead(c.Context(), &req)
	if err != nil {
		slog.Error("failed to capture lead", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to capture lead"))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(lead))
}

func (h *LeadHandler) GetLeads(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	leads, err := h.LeadService.GetLeads(limit, offset)
	if err != nil {
		slog.Error("failed to list leads", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to list leads"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(leads))
}

// AssignLead claims the lead for the calling agent and marks it contacted.
func (h *LeadHandler) AssignLead(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	id := c.Params("id")

	if err := h.LeadService.AssignLead(id, claims.UserID); err != nil {
		slog.Error("failed to assign lead", "lead_id", id, "agent_id", claims.UserID, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("ASSIGN_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(nil))
}

func (h *LeadHandler) UpdateLeadStatus(c fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateLeadStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse lead status request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	if err := h.LeadService.UpdateLeadStatus(id, &req); err != nil {
		slog.Error("failed to update lead status", "lead_id", id, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(nil))
}
