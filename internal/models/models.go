package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents an item in the shop catalog
type Product struct {
	ID            string         `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	Price         int64          `db:"price" json:"price"`
	SalePrice     *int64         `db:"sale_price" json:"sale_price,omitempty"`
	Images        pq.StringArray `db:"images" json:"images"`
	Sizes         pq.StringArray `db:"sizes" json:"sizes,omitempty"`
	Colors        pq.StringArray `db:"colors" json:"colors,omitempty"`
	StockQuantity int            `db:"stock_quantity" json:"stock_quantity"`
	IsActive      bool           `db:"is_active" json:"is_active"`
	CategoryID    string         `db:"category_id" json:"category_id"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// EffectivePrice returns the sale price when one is set, otherwise the regular price.
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		return *p.SalePrice
	}
	return p.Price
}

// Category groups products for the storefront
type Category struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Slug      string  `db:"slug" json:"slug"`
	ImageURL  *string `db:"image_url" json:"image_url,omitempty"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
}

// Order represents a customer order
type Order struct {
	ID              string     `db:"id" json:"id"`
	TelegramUserID  int64      `db:"telegram_user_id" json:"telegram_user_id"`
	Status          string     `db:"status" json:"status"`
	TotalAmount     int64      `db:"total_amount" json:"total_amount"`
	CustomerName    string     `db:"customer_name" json:"customer_name"`
	CustomerPhone   string     `db:"customer_phone" json:"customer_phone"`
	DeliveryAddress string     `db:"delivery_address" json:"delivery_address"`
	DeliveryNotes   string     `db:"delivery_notes" json:"delivery_notes,omitempty"`
	DeliveryMethod  string     `db:"delivery_method" json:"delivery_method"`
	DeliveryCost    int64      `db:"delivery_cost" json:"delivery_cost"`
	PaymentMethod   string     `db:"payment_method" json:"payment_method"`
	PaymentStatus   string     `db:"payment_status" json:"payment_status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	ConfirmedAt     *time.Time `db:"confirmed_at" json:"confirmed_at,omitempty"`
	ShippedAt       *time.Time `db:"shipped_at" json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time `db:"delivered_at" json:"delivered_at,omitempty"`
}

// OrderItem represents one product line in an order. The Product* fields are a
// read-only snapshot joined in for display; UnitPrice is captured at order time
// and never follows later catalog price changes.
type OrderItem struct {
	ID        string `db:"id" json:"id"`
	OrderID   string `db:"order_id" json:"order_id"`
	ProductID string `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
	UnitPrice int64  `db:"unit_price" json:"unit_price"`
	Size      string `db:"size" json:"size,omitempty"`
	Color     string `db:"color" json:"color,omitempty"`

	ProductName   string         `db:"product_name" json:"product_name"`
	ProductPrice  int64          `db:"product_price" json:"product_price"`
	ProductImages pq.StringArray `db:"product_images" json:"product_images"`
}

// Delivery methods
const (
	DeliveryCourier = "courier"
	DeliveryPickup  = "pickup"
)

// Payment methods and statuses. Cash on delivery is the only payment method
// the shop supports.
const (
	PaymentMethodCash    = "cash"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderStats aggregates order counts per status plus total revenue.
type OrderStats struct {
	Total        int   `json:"total"`
	Pending      int   `json:"pending"`
	Confirmed    int   `json:"confirmed"`
	Shipped      int   `json:"shipped"`
	Delivered    int   `json:"delivered"`
	Cancelled    int   `json:"cancelled"`
	TotalRevenue int64 `json:"total_revenue"`
}
