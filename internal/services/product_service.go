package services

import (
	"context"
	"fmt"
	"log/slog"

	"registration-service/internal/models"
	"registration-service/internal/repository"
)

type ProductService struct {
	productRepo repository.IProductRepository
}

func NewProductService(productRepo repository.IProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetCatalog returns active products with benefits decoded. A product
// whose benefits column holds malformed JSON is served with an empty
// benefit list rather than dropped from the catalog.
func (s *ProductService) GetCatalog(ctx context.Context) ([]*models.ProductView, error) {
	products, err := s.productRepo.GetActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	views := make([]*models.ProductView, 0, len(products))
	for _, product := range products {
		benefits, err := product.BenefitList()
		if err != nil {
			slog.Error("malformed benefits column, serving empty list", "product_id", product.ID, "error", err)
			benefits = []string{}
		}
		views = append(views, &models.ProductView{
			ID:               product.ID,
			Name:             product.Name,
			MonthlyPrice:     product.MonthlyPrice,
			ActivationPoints: product.ActivationPoints,
			Benefits:         benefits,
			Description:      product.Description,
		})
	}

	return views, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.ProductView, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	benefits, err := product.BenefitList()
	if err != nil {
		slog.Error("malformed benefits column, serving empty list", "product_id", product.ID, "error", err)
		benefits = []string{}
	}

	return &models.ProductView{
		ID:               product.ID,
		Name:             product.Name,
		MonthlyPrice:     product.MonthlyPrice,
		ActivationPoints: product.ActivationPoints,
		Benefits:         benefits,
		Description:      product.Description,
	}, nil
}
