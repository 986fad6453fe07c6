package store

import (
	"context"
	"database/sql"
	"fmt"

	"menstyle-shop/internal/models"
)

// CreateOrderWithItems inserts an order and its items in a single transaction,
// so a failed item insert never leaves an orphaned order behind.
func (s *Store) CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, telegram_user_id, status, total_amount,
			customer_name, customer_phone, delivery_address, delivery_notes,
			delivery_method, delivery_cost, payment_method, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`

	err = tx.GetContext(ctx, &order.CreatedAt, query,
		order.ID, order.TelegramUserID, order.Status, order.TotalAmount,
		order.CustomerName, order.CustomerPhone, order.DeliveryAddress, order.DeliveryNotes,
		order.DeliveryMethod, order.DeliveryCost, order.PaymentMethod, order.PaymentStatus)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, size, color)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			items[i].ID, items[i].OrderID, items[i].ProductID,
			items[i].Quantity, items[i].UnitPrice, items[i].Size, items[i].Color)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByUser retrieves a user's orders, newest first
func (s *Store) GetOrdersByUser(ctx context.Context, telegramUserID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE telegram_user_id = $1 ORDER BY created_at DESC",
		telegramUserID)
	return orders, err
}

// GetAllOrders retrieves every order, newest first
func (s *Store) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders ORDER BY created_at DESC")
	return orders, err
}

// GetOrderItems retrieves all items for an order with a denormalized product
// snapshot for display
func (s *Store) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.size, oi.color,
			COALESCE(p.name, '') AS product_name,
			COALESCE(p.price, oi.unit_price) AS product_price,
			COALESCE(p.images, '{}') AS product_images
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`,
		orderID)
	return items, err
}

// UpdateOrderStatus sets the order status and stamps the matching timestamp
// column for confirmed/shipped/delivered.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	query := "UPDATE orders SET status = $1 WHERE id = $2"
	if col := models.StatusTimestampColumn(status); col != "" {
		query = fmt.Sprintf("UPDATE orders SET status = $1, %s = NOW() WHERE id = $2", col)
	}

	res, err := s.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	return nil
}
