package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionLifecycle(t *testing.T) {
	legal := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipped},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	illegal := []struct{ from, to string }{
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusConfirmed},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusConfirmed, OrderStatusPending},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestValidateTransitionError(t *testing.T) {
	assert.NoError(t, ValidateTransition(OrderStatusPending, OrderStatusConfirmed))

	err := ValidateTransition(OrderStatusDelivered, OrderStatusPending)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "delivered")
	assert.Contains(t, err.Error(), "pending")
}

func TestValidateTransitionUnknownStatus(t *testing.T) {
	err := ValidateTransition("archived", OrderStatusConfirmed)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestStatusDisplay(t *testing.T) {
	info := StatusDisplay(OrderStatusShipped)
	assert.Equal(t, "🚚", info.Emoji)
	assert.Equal(t, "Shipped", info.Label)

	// Unknown statuses still render instead of panicking.
	unknown := StatusDisplay("archived")
	assert.Equal(t, "❔", unknown.Emoji)
	assert.Equal(t, "archived", unknown.Label)
}

func TestStatusTimestampColumn(t *testing.T) {
	assert.Equal(t, "confirmed_at", StatusTimestampColumn(OrderStatusConfirmed))
	assert.Equal(t, "shipped_at", StatusTimestampColumn(OrderStatusShipped))
	assert.Equal(t, "delivered_at", StatusTimestampColumn(OrderStatusDelivered))
	assert.Equal(t, "", StatusTimestampColumn(OrderStatusPending))
	assert.Equal(t, "", StatusTimestampColumn(OrderStatusCancelled))
}
