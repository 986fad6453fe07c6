package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"menstyle-shop/internal/format"
	"menstyle-shop/internal/service"
	"menstyle-shop/internal/util"

	tgbot "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const welcomeMessage = `🎉 *Welcome to the "Men's Style" shop!*

Here you can:
• 🛍 Browse our products
• 📦 Place an order
• 💳 Pay cash on delivery
• 📞 Get support

Choose an action:`

const helpMessage = `🤝 *How to use this bot*

*Commands:*
/start - Main menu
/orders - My orders
/support - Contact support
/about - About the shop

*How to order:*
1. Tap "🛍 Open shop"
2. Pick products and add them to the cart
3. Fill in the checkout form
4. Wait for a confirmation call

*Payment:* cash on delivery
*Delivery:* to your address`

const supportMessage = `📞 *Support*

If you have questions about orders, delivery or products, write us a message and we will reply shortly.

*Working hours:* 9:00 - 21:00
*How to reach us:*
• Through this bot
• Phone: +7 (XXX) XXX-XX-XX
• Email: support@example.com

Type your question:`

const aboutMessage = `🏪 *About "Men's Style"*

We specialize in quality men's clothing and accessories.

*Why us:*
• ✅ Quality materials
• 🚚 Fast delivery
• 💳 Pay on delivery
• 🔄 14-day returns
• 📞 24/7 support

*Categories:*
• 👔 Suits and jackets
• 👕 Shirts and t-shirts
• 👖 Trousers and jeans
• 👟 Shoes
• 🎒 Accessories

*Delivery:* nationwide
*Payment:* cash on delivery`

func (tb *Bot) handleStart(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	isAdmin := update.Message.From != nil && tb.gate.IsAdmin(update.Message.From.ID)
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, welcomeMessage, tb.mainMenuKeyboard(isAdmin))
}

func (tb *Bot) handleHelp(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	isAdmin := update.Message.From != nil && tb.gate.IsAdmin(update.Message.From.ID)
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, helpMessage, tb.mainMenuKeyboard(isAdmin))
}

func (tb *Bot) handleOrders(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	if update.Message.From == nil {
		return
	}

	orders := tb.orders.GetUserOrders(ctx, update.Message.From.ID)
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, format.OrdersList(orders), tb.myOrdersKeyboard())
}

func (tb *Bot) handleSupport(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, supportMessage, nil)
}

func (tb *Bot) handleAbout(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, aboutMessage, tb.shopInlineKeyboard())
}

func (tb *Bot) handleStats(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	if update.Message.From == nil || !tb.gate.IsAdmin(update.Message.From.ID) {
		util.BotAccessDeniedTotal.Inc()
		_ = tb.sendMessage(ctx, update.Message.Chat.ID, AccessDeniedMessage, nil)
		return
	}

	stats := tb.orders.Stats(ctx)
	_ = tb.sendMessage(ctx, update.Message.Chat.ID, format.Stats(stats), tb.adminPanelKeyboard())
}

func (tb *Bot) handleAdminPanel(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("command").Inc()
	if update.Message.From == nil || !tb.gate.IsAdmin(update.Message.From.ID) {
		util.BotAccessDeniedTotal.Inc()
		_ = tb.sendMessage(ctx, update.Message.Chat.ID, AccessDeniedMessage, nil)
		return
	}

	_ = tb.sendMessage(ctx, update.Message.Chat.ID, "⚙️ *Admin panel*\n\nChoose an action:", tb.adminPanelKeyboard())
}

// handleDefault catches everything the dispatch table does not: checkout
// payloads arriving from the Mini App, and free text, which is relayed to the
// admin chat as a support message.
func (tb *Bot) handleDefault(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.WebAppData != nil {
		tb.handleWebAppCheckout(ctx, update.Message)
		return
	}

	if update.Message.Text != "" {
		tb.relaySupportMessage(ctx, update.Message)
	}
}

// handleWebAppCheckout turns a Mini App sendData payload into an order.
func (tb *Bot) handleWebAppCheckout(ctx context.Context, msg *tgmodels.Message) {
	util.BotUpdatesTotal.WithLabelValues("web_app_data").Inc()

	var req service.CheckoutRequest
	if err := json.Unmarshal([]byte(msg.WebAppData.Data), &req); err != nil {
		tb.logger.Error("Failed to parse web app checkout payload", zap.Error(err))
		_ = tb.sendMessage(ctx, msg.Chat.ID, "❌ Something went wrong with your order. Please try again.", nil)
		return
	}
	if msg.From != nil {
		req.TelegramUserID = msg.From.ID
	}

	order, err := tb.orders.Checkout(ctx, &req)
	if err != nil {
		tb.logger.Error("Checkout from web app failed", zap.Error(err))
		_ = tb.sendMessage(ctx, msg.Chat.ID, "❌ Something went wrong with your order. Please try again.", nil)
		return
	}

	items, err := tb.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		tb.logger.Error("Failed to load items for checkout confirmation", zap.Error(err))
	}
	text := "🎉 *Thank you for your order!*\n\n" + format.OrderForUser(order, items) +
		"\nWe will call you shortly to confirm it."
	_ = tb.sendMessage(ctx, msg.Chat.ID, text, nil)
}

// relaySupportMessage forwards free text to the admin chat, prefixed with the
// sender's identity. Delivery failure turns into a generic error for the
// sender, with no retry.
func (tb *Bot) relaySupportMessage(ctx context.Context, msg *tgmodels.Message) {
	util.BotUpdatesTotal.WithLabelValues("support_relay").Inc()
	if msg.From == nil {
		return
	}

	name := msg.From.FirstName
	if msg.From.LastName != "" {
		name += " " + msg.From.LastName
	}
	username := "-"
	if msg.From.Username != "" {
		username = "@" + msg.From.Username
	}

	relay := fmt.Sprintf("💬 *Support message*\n\nFrom: %s (%s, id %d)\n\n%s",
		name, username, msg.From.ID, msg.Text)

	if err := tb.sendMessage(ctx, tb.cfg.Telegram.AdminChatID, relay, nil); err != nil {
		util.NotificationsFailedTotal.WithLabelValues("support_relay").Inc()
		_ = tb.sendMessage(ctx, msg.Chat.ID, "❌ An error occurred, please try again later", nil)
		return
	}

	util.NotificationsSentTotal.WithLabelValues("support_relay").Inc()
	_ = tb.sendMessage(ctx, msg.Chat.ID, "✅ Your message has been sent to support. We will reply soon!", nil)
}
