package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"registration-service/internal/models"
	"registration-service/internal/registration"
	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type RegistrationHandler struct {
	RegistrationService *services.RegistrationService
	Middleware          *Middleware
}

func NewRegistrationHandler(registrationService *services.RegistrationService, middleware *Middleware) *RegistrationHandler {
	return &RegistrationHandler{
		RegistrationService: registrationService,
		Middleware:          middleware,
	}
}

func (h *RegistrationHandler) Register(app *fiber.App) {
	regGr := app.Group("/api/registrations", h.Middleware.RequireAuth)

	regGr.Post("/", h.OpenDraft)
	regGr.Get("/", h.ListDrafts)

	draftGr := regGr.Group("/:draftId")
	draftGr.Get("/", h.GetDraft)
	draftGr.Patch("/fields", h.UpdateFields)
	draftGr.Put("/partner", h.SetPartner)
	draftGr.Post("/steps/next", h.NextStep)
	draftGr.Post("/steps/previous", h.PreviousStep)
	draftGr.Post("/dependents", h.AddDependent)
	draftGr.Patch("/dependents/:dependentId", h.UpdateDependent)
	draftGr.Delete("/dependents/:dependentId", h.RemoveDependent)
	draftGr.Get("/dependents/:dependentId/cover-options", h.DependentCoverOptions)
	draftGr.Patch("/expenses", h.UpdateExpense)
	draftGr.Put("/beneficiaries", h.SetBeneficiaries)
	draftGr.Post("/submit", h.Submit)
	draftGr.Delete("/", h.Cancel)
}

func (h *RegistrationHandler) OpenDraft(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)

	view, err := h.RegistrationService.OpenDraft(c.Context(), claims.UserID)
	if err != nil {
		slog.Error("failed to open draft", "agent_id", claims.UserID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to open registration"))
	}
	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) ListDrafts(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)

	draftIDs, err := h.RegistrationService.ListDrafts(c.Context(), claims.UserID)
	if err != nil {
		slog.Error("failed to list drafts", "agent_id", claims.UserID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to list registrations"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(draftIDs))
}

func (h *RegistrationHandler) GetDraft(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	view, err := h.RegistrationService.GetDraft(c.Context(), claims.UserID, draftID)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "Registration not found"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) UpdateFields(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	var req models.UpdateDraftFieldsRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse fields request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := h.RegistrationService.UpdateFields(c.Context(), claims.UserID, draftID, req.Fields)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) SetPartner(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	var partner *registration.PartnerDetails
	if err := c.Bind().Body(&partner); err != nil {
		slog.Error("failed to parse partner request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := h.RegistrationService.SetPartner(c.Context(), claims.UserID, draftID, partner)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) NextStep(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	view, err := h.RegistrationService.NextStep(c.Context(), claims.UserID, draftID)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) PreviousStep(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	view, err := h.RegistrationService.PreviousStep(c.Context(), claims.UserID, draftID)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) AddDependent(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	view, dependentID, err := h.RegistrationService.AddDependent(c.Context(), claims.UserID, draftID)
	if err != nil {
		return h.draftError(c, draftID, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(fiber.Map{
		"dependent_id": dependentID,
		"view":         view,
	}))
}

func (h *RegistrationHandler) UpdateDependent(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")
	dependentID := c.Params("dependentId")

	var req models.UpdateDependentRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse dependent request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := h.RegistrationService.UpdateDependent(c.Context(), claims.UserID, draftID, dependentID, req.Field, req.Value)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) RemoveDependent(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")
	dependentID := c.Params("dependentId")

	view, err := h.RegistrationService.RemoveDependent(c.Context(), claims.UserID, draftID, dependentID)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) DependentCoverOptions(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")
	dependentID := c.Params("dependentId")

	options, err := h.RegistrationService.DependentCoverOptions(c.Context(), claims.UserID, draftID, dependentID)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(options))
}

func (h *RegistrationHandler) UpdateExpense(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	var req models.UpdateExpensesRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse expense request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := h.RegistrationService.UpdateExpense(c.Context(), claims.UserID, draftID, req.Category, req.Amount)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) SetBeneficiaries(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	var beneficiaries []registration.Beneficiary
	if err := c.Bind().Body(&beneficiaries); err != nil {
		slog.Error("failed to parse beneficiaries request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	view, err := h.RegistrationService.SetBeneficiaries(c.Context(), claims.UserID, draftID, beneficiaries)
	if err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(view))
}

func (h *RegistrationHandler) Submit(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	customer, validationErrs, err := h.RegistrationService.Submit(c.Context(), claims.UserID, draftID)
	if err != nil {
		if len(validationErrs) > 0 {
			return c.Status(http.StatusUnprocessableEntity).JSON(
				utils.CreateErrorResponse("VALIDATION_FAILED", "Registration is incomplete"))
		}
		slog.Error("failed to submit registration", "draft_id", draftID, "error", err)
		return h.draftError(c, draftID, err)
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(customer))
}

func (h *RegistrationHandler) Cancel(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	draftID := c.Params("draftId")

	if err := h.RegistrationService.Cancel(c.Context(), claims.UserID, draftID); err != nil {
		return h.draftError(c, draftID, err)
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(nil))
}

func (h *RegistrationHandler) draftError(c fiber.Ctx, draftID string, err error) error {
	if strings.Contains(err.Error(), "not found") {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "Registration not found"))
	}
	slog.Error("registration draft operation failed", "draft_id", draftID, "error", err)
	return c.Status(http.StatusBadRequest).JSON(
		utils.CreateErrorResponse("DRAFT_OPERATION_FAILED", err.Error()))
}
