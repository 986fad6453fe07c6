package format

import (
	"testing"
	"time"

	"menstyle-shop/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:              "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		TelegramUserID:  42,
		CustomerName:    "Ivan Petrov",
		CustomerPhone:   "+7 900 000-00-00",
		DeliveryAddress: "Moscow, Tverskaya 1",
		DeliveryMethod:  models.DeliveryCourier,
		TotalAmount:     6999,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderForAdmin(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "Classic Tee", Quantity: 2, UnitPrice: 2500, Size: "L", Color: "Black"},
		{ProductName: "Belt", Quantity: 1, UnitPrice: 1999},
	}

	text := OrderForAdmin(sampleOrder(), items)

	assert.Contains(t, text, "#a1b2c3d4")
	assert.Contains(t, text, "Ivan Petrov")
	assert.Contains(t, text, "+7 900 000-00-00")
	assert.Contains(t, text, "Moscow, Tverskaya 1")
	assert.Contains(t, text, "Courier")
	assert.Contains(t, text, "6 999 ₽")
	assert.Contains(t, text, "⏳ Awaiting confirmation")
	assert.Contains(t, text, "14.03.2025")
	assert.Contains(t, text, "Classic Tee")
	assert.Contains(t, text, "2 pcs. × 2 500 ₽")
	assert.Contains(t, text, "Size: L")
	assert.Contains(t, text, "Color: Black")
}

func TestOrderForUserOmitsContactDetails(t *testing.T) {
	text := OrderForUser(sampleOrder(), nil)

	assert.Contains(t, text, "#a1b2c3d4")
	assert.NotContains(t, text, "Ivan Petrov")
	assert.NotContains(t, text, "+7 900")
}

func TestOrdersListEmpty(t *testing.T) {
	assert.Equal(t, NoOrdersMessage, OrdersList(nil))
	assert.Equal(t, NoOrdersMessage, OrdersList([]models.Order{}))
}

func TestOrdersList(t *testing.T) {
	orders := []models.Order{*sampleOrder()}
	orders[0].Status = models.OrderStatusDelivered

	text := OrdersList(orders)
	assert.Contains(t, text, "🎉")
	assert.Contains(t, text, "#a1b2c3d4")
	assert.Contains(t, text, "6 999 ₽")
}

func TestStats(t *testing.T) {
	text := Stats(&models.OrderStats{
		Total:        5,
		Pending:      1,
		Confirmed:    1,
		Shipped:      1,
		Delivered:    1,
		Cancelled:    1,
		TotalRevenue: 1234567,
	})

	assert.Contains(t, text, "Total orders: 5")
	assert.Contains(t, text, "1 234 567 ₽")
}

func TestProductWithSalePrice(t *testing.T) {
	sale := int64(5000)
	text := Product(&models.Product{
		Name:          "Wool Coat",
		Description:   "Warm winter coat",
		Price:         10000,
		SalePrice:     &sale,
		StockQuantity: 3,
		Sizes:         []string{"M", "L"},
	})

	assert.Contains(t, text, "Wool Coat")
	assert.Contains(t, text, "5 000 ₽ instead of 10 000 ₽ (-50%)")
	assert.Contains(t, text, "Sizes: M, L")
	// Legacy Markdown renders ~ literally, so the card must not use it.
	assert.NotContains(t, text, "~")
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "0", Price(0))
	assert.Equal(t, "999", Price(999))
	assert.Equal(t, "6 999", Price(6999))
	assert.Equal(t, "1 234 567", Price(1234567))
	assert.Equal(t, "-6 999", Price(-6999))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", ShortID("a1b2c3d4-e5f6-7890"))
	assert.Equal(t, "short", ShortID("short"))
}
