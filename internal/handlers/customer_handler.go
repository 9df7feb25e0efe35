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

type CustomerHandler struct {
	CustomerService     *services.CustomerService
	RegistrationService *services.RegistrationService
	Middleware          *Middleware
}

func NewCustomerHandler(customerService *services.CustomerService, registrationService *services.RegistrationService, middleware *Middleware) *CustomerHandler {
	return &CustomerHandler{
		CustomerService:     customerService,
		RegistrationService: registrationService,
		Middleware:          middleware,
	}
}

func (h *CustomerHandler) Register(app *fiber.App) {
	customerGr := app.Group("/api/customers", h.Middleware.RequireAuth)

	customerGr.Post("/", h.CreateCustomer)
	customerGr.Get("/", h.GetCustomers)
	customerGr.Get("/:id", h.GetCustomerDetail)
	customerGr.Patch("/:id/status", h.UpdateCustomerStatus, h.Middleware.RequireRole(models.RoleAdmin))
}

// CreateCustomer is the single-shot registration: the complete form
// payload in one request, validated and priced server-side.
func (h *CustomerHandler) CreateCustomer(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)

	var req models.CreateCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse customer create request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	customer, validationErrs, err := h.RegistrationService.CreateDirect(c.Context(), claims.UserID, &req)
	if err != nil {
		if len(validationErrs) > 0 {
			return c.Status(http.StatusUnprocessableEntity).JSON(
				utils.CreateErrorResponse("VALIDATION_FAILED", "Registration is incomplete"))
		}
		slog.Error("failed to create customer", "agent_id", claims.UserID, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("CREATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(customer))
}

// GetCustomers lists the caller's own signups; admins see everyone's.
func (h *CustomerHandler) GetCustomers(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	var customers []*models.Customer
	var err error
	if claims.Role == string(models.RoleAdmin) {
		customers, err = h.CustomerService.GetAllCustomers(limit, offset)
	} else {
		customers, err = h.CustomerService.GetCustomersByAgent(claims.UserID, limit, offset)
	}
	if err != nil {
		slog.Error("failed to list customers", "user_id", claims.UserID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to list customers"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(customers))
}

func (h *CustomerHandler) GetCustomerDetail(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	id := c.Params("id")

	detail, err := h.CustomerService.GetCustomerDetail(id)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "Customer not found"))
	}

	// Agents may only open their own customers
	if claims.Role != string(models.RoleAdmin) && detail.Customer.AgentID != claims.UserID {
		return c.Status(http.StatusForbidden).JSON(
			utils.CreateErrorResponse("FORBIDDEN", "Insufficient permissions"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(detail))
}

func (h *CustomerHandler) UpdateCustomerStatus(c fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateCustomerStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("failed to parse customer status request", "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("BAD_REQUEST", "Invalid request body"))
	}

	if err := h.CustomerService.UpdateCustomerStatus(id, &req); err != nil {
		slog.Error("failed to update customer status", "customer_id", id, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(nil))
}
