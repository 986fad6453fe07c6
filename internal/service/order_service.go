package service

import (
	"context"
	"fmt"
	"time"

	"menstyle-shop/internal/broker"
	"menstyle-shop/internal/models"
	"menstyle-shop/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderStore is the subset of the store the order service touches.
// *store.Store satisfies it.
type OrderStore interface {
	CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrdersByUser(ctx context.Context, telegramUserID int64) ([]models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}

// OrderService handles the order lifecycle
type OrderService struct {
	store          OrderStore
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store OrderStore, eventPublisher *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// CheckoutRequest is a checkout submission from the Mini App. The total is
// computed client-side and stored as submitted.
type CheckoutRequest struct {
	TelegramUserID int64          `json:"telegram_user_id"`
	Customer       CustomerInfo   `json:"customer" binding:"required"`
	DeliveryMethod string         `json:"delivery_method"`
	DeliveryCost   int64          `json:"delivery_cost"`
	TotalPrice     int64          `json:"total_price" binding:"required"`
	Items          []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// CustomerInfo carries the checkout form fields
type CustomerInfo struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Comment string `json:"comment"`
}

// CheckoutItem is one cart line with the price captured at add-to-cart time
type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     int64  `json:"price" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// BuildOrder maps a checkout submission to an order plus its items. The status
// is always pending and the payment method always cash; item prices are taken
// from the submission, not the live catalog.
func BuildOrder(req *CheckoutRequest) (*models.Order, []models.OrderItem) {
	method := req.DeliveryMethod
	if method != models.DeliveryPickup {
		method = models.DeliveryCourier
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		TelegramUserID:  req.TelegramUserID,
		Status:          models.OrderStatusPending,
		TotalAmount:     req.TotalPrice,
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		DeliveryAddress: req.Customer.Address,
		DeliveryNotes:   req.Customer.Comment,
		DeliveryMethod:  method,
		DeliveryCost:    req.DeliveryCost,
		PaymentMethod:   models.PaymentMethodCash,
		PaymentStatus:   models.PaymentStatusPending,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, models.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			Size:      line.Size,
			Color:     line.Color,
		})
	}

	return order, items
}

// Checkout creates an order with its items and publishes an OrderCreated
// event. No stock decrement happens here: the catalog and orders are
// deliberately unsynchronized.
func (s *OrderService) Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Checkout")
	defer span.End()

	order, items := BuildOrder(req)

	if err := s.store.CreateOrderWithItems(ctx, order, items); err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int64("total_amount", order.TotalAmount))

	event := &models.OrderCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderCreated,
			Timestamp: time.Now(),
		},
		OrderID:        order.ID,
		TelegramUserID: order.TelegramUserID,
		TotalAmount:    order.TotalAmount,
		CustomerName:   order.CustomerName,
	}
	if err := s.eventPublisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCreated event", zap.Error(err))
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.store.GetOrderByID(ctx, orderID)
}

// GetOrderItems retrieves the items of an order with their product snapshot
func (s *OrderService) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	return s.store.GetOrderItems(ctx, orderID)
}

// GetUserOrders lists a user's orders, newest first. Read failures degrade to
// an empty list so the bot keeps working without a reachable database.
func (s *OrderService) GetUserOrders(ctx context.Context, telegramUserID int64) []models.Order {
	orders, err := s.store.GetOrdersByUser(ctx, telegramUserID)
	if err != nil {
		s.logger.Error("Failed to get user orders",
			zap.Int64("telegram_user_id", telegramUserID),
			zap.Error(err))
		return []models.Order{}
	}
	return orders
}

// GetAllOrders lists every order, newest first, with the same degrade-to-empty
// policy as GetUserOrders.
func (s *OrderService) GetAllOrders(ctx context.Context) []models.Order {
	orders, err := s.store.GetAllOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to get orders", zap.Error(err))
		return []models.Order{}
	}
	return orders
}

// UpdateStatus applies a lifecycle transition. Illegal transitions are
// rejected with models.ErrInvalidTransition before anything is written.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.UpdateStatus")
	defer span.End()

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateTransition(order.Status, newStatus); err != nil {
		util.OrderTransitionsRejected.Inc()
		return nil, err
	}

	if err := s.store.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	util.OrderTransitionsTotal.WithLabelValues(newStatus).Inc()
	s.logger.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("from", order.Status),
		zap.String("to", newStatus))

	event := &models.OrderStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderStatusChanged,
			Timestamp: time.Now(),
		},
		OrderID:        orderID,
		TelegramUserID: order.TelegramUserID,
		OldStatus:      order.Status,
		NewStatus:      newStatus,
	}
	if err := s.eventPublisher.PublishOrderStatusChanged(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderStatusChanged event", zap.Error(err))
	}

	order.Status = newStatus
	return order, nil
}

// Stats aggregates counts per status bucket and total revenue by scanning the
// full order set in memory. Fine at a single small shop's volume.
func (s *OrderService) Stats(ctx context.Context) *models.OrderStats {
	return ComputeStats(s.GetAllOrders(ctx))
}

// ComputeStats folds an order set into per-status counts and revenue. The
// buckets always sum to Total, including for the empty set.
func ComputeStats(orders []models.Order) *models.OrderStats {
	stats := &models.OrderStats{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusConfirmed:
			stats.Confirmed++
		case models.OrderStatusShipped:
			stats.Shipped++
		case models.OrderStatusDelivered:
			stats.Delivered++
		case models.OrderStatusCancelled:
			stats.Cancelled++
		}
		stats.TotalRevenue += order.TotalAmount
	}
	return stats
}
