package models

import (
	"errors"
	"fmt"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ErrInvalidTransition is returned when an order status change is not part of
// the order lifecycle.
var ErrInvalidTransition = errors.New("invalid order status transition")

// StatusInfo is the single display table shared by every formatter.
type StatusInfo struct {
	Emoji string
	Label string
}

var statusTable = map[string]StatusInfo{
	OrderStatusPending:   {Emoji: "⏳", Label: "Awaiting confirmation"},
	OrderStatusConfirmed: {Emoji: "✅", Label: "Confirmed"},
	OrderStatusShipped:   {Emoji: "🚚", Label: "Shipped"},
	OrderStatusDelivered: {Emoji: "🎉", Label: "Delivered"},
	OrderStatusCancelled: {Emoji: "❌", Label: "Cancelled"},
}

// StatusDisplay returns the emoji/label pair for a status. Unknown statuses get
// a neutral placeholder rather than a panic so formatters stay total.
func StatusDisplay(status string) StatusInfo {
	if info, ok := statusTable[status]; ok {
		return info
	}
	return StatusInfo{Emoji: "❔", Label: status}
}

// allowedTransitions is the order lifecycle: delivered and cancelled are
// terminal.
var allowedTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition (wrapped with both statuses)
// when from -> to is not a legal lifecycle edge.
func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// StatusTimestampColumn returns the orders column stamped when a status is
// entered, or "" when the status carries no timestamp.
func StatusTimestampColumn(status string) string {
	switch status {
	case OrderStatusConfirmed:
		return "confirmed_at"
	case OrderStatusShipped:
		return "shipped_at"
	case OrderStatusDelivered:
		return "delivered_at"
	default:
		return ""
	}
}
