package bot

import (
	"menstyle-shop/internal/models"

	tgmodels "github.com/go-telegram/bot/models"
)

// Reply keyboard button labels. The dispatcher matches these exactly, so they
// live in one place.
const (
	btnOpenShop   = "🛍 Open shop"
	btnMyOrders   = "📦 My orders"
	btnSupport    = "📞 Support"
	btnAbout      = "ℹ️ About the shop"
	btnAdminPanel = "⚙️ Admin panel"
	btnMainMenu   = "🔙 Main menu"
)

func (tb *Bot) mainMenuKeyboard(isAdmin bool) *tgmodels.ReplyKeyboardMarkup {
	rows := [][]tgmodels.KeyboardButton{
		{{Text: btnOpenShop, WebApp: &tgmodels.WebAppInfo{URL: tb.cfg.Telegram.MiniAppURL}}},
		{{Text: btnMyOrders}, {Text: btnSupport}},
	}
	if isAdmin {
		rows = append(rows, []tgmodels.KeyboardButton{{Text: btnAdminPanel}})
	}
	rows = append(rows, []tgmodels.KeyboardButton{{Text: btnAbout}})

	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}

func (tb *Bot) shopInlineKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{{Text: btnOpenShop, WebApp: &tgmodels.WebAppInfo{URL: tb.cfg.Telegram.MiniAppURL}}},
			{
				{Text: btnMyOrders, CallbackData: "my_orders"},
				{Text: btnSupport, CallbackData: "support"},
			},
			{
				{Text: "🔥 Sale items", CallbackData: "deals"},
				{Text: btnAbout, CallbackData: "about"},
			},
		},
	}
}

func (tb *Bot) adminPanelKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{{Text: "➕ Add product", WebApp: &tgmodels.WebAppInfo{URL: tb.cfg.Telegram.MiniAppURL + "/admin"}}},
			{
				{Text: "📦 All orders", CallbackData: "admin_orders"},
				{Text: "📊 Statistics", CallbackData: "admin_stats"},
			},
		},
	}
}

// orderAdminKeyboard offers only the transitions that are legal from the
// order's current status; terminal orders get a back button.
func orderAdminKeyboard(orderID, status string) *tgmodels.InlineKeyboardMarkup {
	var rows [][]tgmodels.InlineKeyboardButton

	switch status {
	case models.OrderStatusPending:
		rows = append(rows, []tgmodels.InlineKeyboardButton{
			{Text: "✅ Confirm", CallbackData: "confirm_order_" + orderID},
			{Text: "❌ Cancel", CallbackData: "cancel_order_" + orderID},
		})
	case models.OrderStatusConfirmed:
		rows = append(rows, []tgmodels.InlineKeyboardButton{
			{Text: "📦 Ship", CallbackData: "ship_order_" + orderID},
			{Text: "❌ Cancel", CallbackData: "cancel_order_" + orderID},
		})
	case models.OrderStatusShipped:
		rows = append(rows, []tgmodels.InlineKeyboardButton{
			{Text: "✅ Delivered", CallbackData: "deliver_order_" + orderID},
		})
	}

	rows = append(rows, []tgmodels.InlineKeyboardButton{
		{Text: "🔙 Back to orders", CallbackData: "admin_orders"},
	})

	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (tb *Bot) myOrdersKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{{Text: "🛍 Place a new order", WebApp: &tgmodels.WebAppInfo{URL: tb.cfg.Telegram.MiniAppURL}}},
			{{Text: btnMainMenu, CallbackData: "main_menu"}},
		},
	}
}
