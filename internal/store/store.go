package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"menstyle-shop/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// GetProducts retrieves all active products, newest first
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE is_active = TRUE ORDER BY created_at DESC")
	return products, err
}

// GetProductsByCategory retrieves active products in a category, newest first
func (s *Store) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE category_id = $1 AND is_active = TRUE ORDER BY created_at DESC",
		categoryID)
	return products, err
}

// GetProductByID retrieves a product by ID
func (s *Store) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts finds active products whose name contains the query,
// case-insensitive, newest first
func (s *Store) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE name ILIKE '%' || $1 || '%' AND is_active = TRUE ORDER BY created_at DESC",
		query)
	return products, err
}

// GetCategories retrieves all categories in display order
func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories ORDER BY sort_order ASC")
	return categories, err
}

// CreateProduct inserts a new product
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, sale_price, images, sizes, colors,
			stock_quantity, is_active, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	return s.db.GetContext(ctx, &product.CreatedAt, query,
		product.ID, product.Name, product.Description, product.Price, product.SalePrice,
		product.Images, product.Sizes, product.Colors,
		product.StockQuantity, product.IsActive, product.CategoryID)
}

// UpdateProduct updates all editable product columns
func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, sale_price = $4, images = $5,
			sizes = $6, colors = $7, stock_quantity = $8, is_active = $9, category_id = $10
		WHERE id = $11`,
		product.Name, product.Description, product.Price, product.SalePrice, product.Images,
		product.Sizes, product.Colors, product.StockQuantity, product.IsActive, product.CategoryID,
		product.ID)
	if err != nil {
		return err
	}
	return requireRow(res, product.ID)
}

// DeleteProduct removes a product. Existing order items keep their captured
// unit price; the display join falls back to empty snapshot fields.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// UpdateStockQuantity sets the stock count for a product
func (s *Store) UpdateStockQuantity(ctx context.Context, id string, quantity int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET stock_quantity = $1 WHERE id = $2", quantity, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}
