package models

import "time"

// Event types
const (
	EventTypeOrderCreated       = "ORDER_CREATED"
	EventTypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCreatedEvent published when a checkout creates an order
type OrderCreatedEvent struct {
	BaseEvent
	OrderID        string `json:"order_id"`
	TelegramUserID int64  `json:"telegram_user_id"`
	TotalAmount    int64  `json:"total_amount"`
	CustomerName   string `json:"customer_name"`
}

// OrderStatusChangedEvent published when an admin moves an order through the
// lifecycle
type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID        string `json:"order_id"`
	TelegramUserID int64  `json:"telegram_user_id"`
	OldStatus      string `json:"old_status"`
	NewStatus      string `json:"new_status"`
}
