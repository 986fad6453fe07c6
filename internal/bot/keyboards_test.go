package bot

import (
	"strings"
	"testing"

	"menstyle-shop/internal/models"

	"github.com/stretchr/testify/assert"
)

// Every transition button the admin keyboard offers must be a legal lifecycle
// edge from the order's current status.
func TestOrderAdminKeyboardOffersOnlyLegalTransitions(t *testing.T) {
	callbackStatus := map[string]string{
		"confirm_order_": models.OrderStatusConfirmed,
		"ship_order_":    models.OrderStatusShipped,
		"deliver_order_": models.OrderStatusDelivered,
		"cancel_order_":  models.OrderStatusCancelled,
	}

	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}

	for _, status := range statuses {
		kb := orderAdminKeyboard("order-1", status)
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				for prefix, target := range callbackStatus {
					if strings.HasPrefix(btn.CallbackData, prefix) {
						assert.True(t, models.CanTransition(status, target),
							"keyboard for %s offers illegal transition to %s", status, target)
					}
				}
			}
		}
	}
}

func TestOrderAdminKeyboardTerminalStatuses(t *testing.T) {
	for _, status := range []string{models.OrderStatusDelivered, models.OrderStatusCancelled} {
		kb := orderAdminKeyboard("order-1", status)
		// Terminal orders only get the back button.
		assert.Len(t, kb.InlineKeyboard, 1)
		assert.Equal(t, "admin_orders", kb.InlineKeyboard[0][0].CallbackData)
	}
}
