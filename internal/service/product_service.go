package service

import (
	"context"
	"time"

	"menstyle-shop/internal/models"
	"menstyle-shop/internal/redisclient"
	"menstyle-shop/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductStore is the subset of the store the product service touches.
// *store.Store satisfies it.
type ProductStore interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	UpdateStockQuantity(ctx context.Context, id string, quantity int) error
}

// ProductService handles catalog reads and admin catalog writes. List reads go
// through the Redis catalog cache; any write invalidates the whole cache.
type ProductService struct {
	store    ProductStore
	cache    *redisclient.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(store ProductStore, cache *redisclient.Client, cacheTTL time.Duration) *ProductService {
	return &ProductService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   util.GetLogger(),
	}
}

// ListProducts lists all active products, newest first. Read failures degrade
// to an empty list.
func (s *ProductService) ListProducts(ctx context.Context) []models.Product {
	return s.cachedProducts(ctx, "products:all", func() ([]models.Product, error) {
		return s.store.GetProducts(ctx)
	})
}

// ListByCategory lists active products in one category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) []models.Product {
	return s.cachedProducts(ctx, "products:category:"+categoryID, func() ([]models.Product, error) {
		return s.store.GetProductsByCategory(ctx, categoryID)
	})
}

// Search finds active products by case-insensitive name substring. Search
// results are not cached: the key space is unbounded.
func (s *ProductService) Search(ctx context.Context, query string) []models.Product {
	products, err := s.store.SearchProducts(ctx, query)
	if err != nil {
		s.logger.Error("Failed to search products", zap.String("query", query), zap.Error(err))
		return []models.Product{}
	}
	return products
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.store.GetProductByID(ctx, id)
}

// ListCategories lists all categories in display order
func (s *ProductService) ListCategories(ctx context.Context) []models.Category {
	var cached []models.Category
	if hit, err := s.cache.GetCatalog(ctx, "categories", &cached); err == nil && hit {
		util.CatalogCacheHits.Inc()
		return cached
	}
	util.CatalogCacheMisses.Inc()

	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to get categories", zap.Error(err))
		return []models.Category{}
	}

	if err := s.cache.SetCatalog(ctx, "categories", categories, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache categories", zap.Error(err))
	}
	return categories
}

// Create inserts a new product and invalidates the catalog cache
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update rewrites a product and invalidates the catalog cache
func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a product and invalidates the catalog cache
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateStock sets a product's stock count and invalidates the catalog cache.
// Stock is informational only: nothing reserves or decrements it at checkout.
func (s *ProductService) UpdateStock(ctx context.Context, id string, quantity int) error {
	if err := s.store.UpdateStockQuantity(ctx, id, quantity); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) cachedProducts(ctx context.Context, key string, load func() ([]models.Product, error)) []models.Product {
	var cached []models.Product
	if hit, err := s.cache.GetCatalog(ctx, key, &cached); err == nil && hit {
		util.CatalogCacheHits.Inc()
		return cached
	}
	util.CatalogCacheMisses.Inc()

	products, err := load()
	if err != nil {
		s.logger.Error("Failed to load products", zap.String("key", key), zap.Error(err))
		return []models.Product{}
	}

	if err := s.cache.SetCatalog(ctx, key, products, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache products", zap.String("key", key), zap.Error(err))
	}
	return products
}

func (s *ProductService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}
