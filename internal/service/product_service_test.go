package service

import (
	"context"
	"testing"

	"menstyle-shop/internal/models"

	"github.com/stretchr/testify/assert"
)

// failingProductStore fails every call, standing in for an unreachable
// database.
type failingProductStore struct{}

func (failingProductStore) GetProducts(context.Context) ([]models.Product, error) {
	return nil, errStoreDown
}

func (failingProductStore) GetProductsByCategory(context.Context, string) ([]models.Product, error) {
	return nil, errStoreDown
}

func (failingProductStore) GetProductByID(context.Context, string) (*models.Product, error) {
	return nil, errStoreDown
}

func (failingProductStore) SearchProducts(context.Context, string) ([]models.Product, error) {
	return nil, errStoreDown
}

func (failingProductStore) GetCategories(context.Context) ([]models.Category, error) {
	return nil, errStoreDown
}

func (failingProductStore) CreateProduct(context.Context, *models.Product) error {
	return errStoreDown
}

func (failingProductStore) UpdateProduct(context.Context, *models.Product) error {
	return errStoreDown
}

func (failingProductStore) DeleteProduct(context.Context, string) error {
	return errStoreDown
}

func (failingProductStore) UpdateStockQuantity(context.Context, string, int) error {
	return errStoreDown
}

func TestSearchDegradesToEmpty(t *testing.T) {
	s := NewProductService(failingProductStore{}, nil, 0)

	products := s.Search(context.Background(), "coat")
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetSurfacesStoreError(t *testing.T) {
	s := NewProductService(failingProductStore{}, nil, 0)

	_, err := s.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, errStoreDown)
}
