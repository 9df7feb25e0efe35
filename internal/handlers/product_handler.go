package handlers

import (
	"log/slog"
	"net/http"

	"registration-service/internal/services"
	"registration-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type ProductHandler struct {
	ProductService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		ProductService: productService,
	}
}

func (h *ProductHandler) Register(app *fiber.App) {
	productGr := app.Group("/api/products")

	// Catalog is public so the marketing site can render plans
	productGr.Get("/", h.GetCatalog)
	productGr.Get("/:id", h.GetProduct)
}

func (h *ProductHandler) GetCatalog(c fiber.Ctx) error {
	products, err := h.ProductService.GetCatalog(c.Context())
	if err != nil {
		slog.Error("failed to load product catalog", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to load products"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(products))
}

func (h *ProductHandler) GetProduct(c fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.ProductService.GetProduct(c.Context(), id)
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(
			utils.CreateErrorResponse("NOT_FOUND", "Product not found"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(product))
}
