package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"registration-service/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const productCacheKey = "catalog:products"
const productCacheTTL = 10 * time.Minute

type IProductRepository interface {
	GetActiveProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	InvalidateCache(ctx context.Context) error
}

// ProductRepository reads the catalog from Postgres with a Redis
// read-through cache in front. The catalog changes rarely so a short
// TTL is enough.
type ProductRepository struct {
	db    *sqlx.DB
	cache *redis.Client
}

func NewProductRepository(db *sqlx.DB, cache *redis.Client) IProductRepository {
	return &ProductRepository{
		db:    db,
		cache: cache,
	}
}

func (r *ProductRepository) GetActiveProducts(ctx context.Context) ([]*models.Product, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, productCacheKey).Result()
		if err == nil {
			var products []*models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
			slog.Error("failed to decode cached product catalog, falling back to database", "error", err)
		} else if err != redis.Nil {
			slog.Error("failed to read product catalog cache", "error", err)
		}
	}

	var products []*models.Product
	query := `SELECT * FROM products WHERE is_active = true ORDER BY monthly_price ASC`

	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active products: %w", err)
	}

	if r.cache != nil {
		data, err := json.Marshal(products)
		if err == nil {
			if err := r.cache.Set(ctx, productCacheKey, data, productCacheTTL).Err(); err != nil {
				slog.Error("failed to cache product catalog", "error", err)
			}
		}
	}

	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	query := `SELECT * FROM products WHERE id = $1`

	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) InvalidateCache(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	if err := r.cache.Del(ctx, productCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	return nil
}
