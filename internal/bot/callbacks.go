package bot

import (
	"context"
	"errors"
	"strings"

	"menstyle-shop/internal/format"
	"menstyle-shop/internal/models"
	"menstyle-shop/internal/util"

	tgbot "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// callbackChatID digs the chat id out of the message a callback button was
// attached to. Zero when Telegram reports the message as inaccessible.
func callbackChatID(cb *tgmodels.CallbackQuery) int64 {
	if cb.Message.Message != nil {
		return cb.Message.Message.Chat.ID
	}
	return 0
}

func (tb *Bot) cbMainMenu(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	chatID := callbackChatID(update.CallbackQuery)
	if chatID == 0 {
		return
	}
	_ = tb.sendMessage(ctx, chatID, "🎉 *Main menu*\n\nChoose an action:", tb.shopInlineKeyboard())
}

func (tb *Bot) cbMyOrders(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	chatID := callbackChatID(update.CallbackQuery)
	if chatID == 0 {
		return
	}

	orders := tb.orders.GetUserOrders(ctx, update.CallbackQuery.From.ID)
	_ = tb.sendMessage(ctx, chatID, format.OrdersList(orders), tb.myOrdersKeyboard())
}

func (tb *Bot) cbSupport(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	if chatID := callbackChatID(update.CallbackQuery); chatID != 0 {
		_ = tb.sendMessage(ctx, chatID, supportMessage, nil)
	}
}

func (tb *Bot) cbAbout(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	if chatID := callbackChatID(update.CallbackQuery); chatID != 0 {
		_ = tb.sendMessage(ctx, chatID, aboutMessage, tb.shopInlineKeyboard())
	}
}

// cbDeals shows current sale items as full product cards. The list is capped
// so one tap does not flood the chat.
func (tb *Bot) cbDeals(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	chatID := callbackChatID(update.CallbackQuery)
	if chatID == 0 {
		return
	}

	const maxDeals = 5
	shown := 0
	for _, p := range tb.products.ListProducts(ctx) {
		if p.EffectivePrice() == p.Price {
			continue
		}
		product := p
		_ = tb.sendMessage(ctx, chatID, format.Product(&product), nil)
		shown++
		if shown == maxDeals {
			break
		}
	}

	if shown == 0 {
		_ = tb.sendMessage(ctx, chatID, "🔥 No sale items right now, check back later!", tb.shopInlineKeyboard())
		return
	}
	_ = tb.sendMessage(ctx, chatID, "Open the shop to order:", tb.shopInlineKeyboard())
}

func (tb *Bot) cbViewOrder(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()

	orderID := strings.TrimPrefix(update.CallbackQuery.Data, "view_order_")
	order, err := tb.orders.GetOrder(ctx, orderID)
	if err != nil {
		tb.answerCallback(ctx, update.CallbackQuery.ID, "❌ Order not found")
		return
	}
	items, err := tb.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		tb.answerCallback(ctx, update.CallbackQuery.ID, "❌ An error occurred, please try again later")
		return
	}

	tb.answerCallback(ctx, update.CallbackQuery.ID, "")
	if chatID := callbackChatID(update.CallbackQuery); chatID != 0 {
		_ = tb.sendMessage(ctx, chatID, format.OrderForUser(order, items), tb.myOrdersKeyboard())
	}
}

func (tb *Bot) cbAdminOrders(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	if !tb.gate.IsAdmin(update.CallbackQuery.From.ID) {
		util.BotAccessDeniedTotal.Inc()
		tb.answerCallback(ctx, update.CallbackQuery.ID, AccessDeniedMessage)
		return
	}
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	chatID := callbackChatID(update.CallbackQuery)
	if chatID == 0 {
		return
	}

	orders := tb.orders.GetAllOrders(ctx)
	if len(orders) == 0 {
		_ = tb.sendMessage(ctx, chatID, "📦 No orders yet", tb.adminPanelKeyboard())
		return
	}

	_ = tb.sendMessage(ctx, chatID, format.OrdersList(orders), tb.adminPanelKeyboard())
}

func (tb *Bot) cbAdminStats(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
	util.BotUpdatesTotal.WithLabelValues("callback").Inc()
	if !tb.gate.IsAdmin(update.CallbackQuery.From.ID) {
		util.BotAccessDeniedTotal.Inc()
		tb.answerCallback(ctx, update.CallbackQuery.ID, AccessDeniedMessage)
		return
	}
	tb.answerCallback(ctx, update.CallbackQuery.ID, "")

	if chatID := callbackChatID(update.CallbackQuery); chatID != 0 {
		stats := tb.orders.Stats(ctx)
		_ = tb.sendMessage(ctx, chatID, format.Stats(stats), tb.adminPanelKeyboard())
	}
}

// cbTransition builds a handler for one of the parameterized status callbacks
// (confirm_order_<id>, ship_order_<id>, deliver_order_<id>,
// cancel_order_<id>). The admin gate runs before any state is touched.
func (tb *Bot) cbTransition(newStatus, successText string) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *tgmodels.Update) {
		util.BotUpdatesTotal.WithLabelValues("callback").Inc()
		if !tb.gate.IsAdmin(update.CallbackQuery.From.ID) {
			util.BotAccessDeniedTotal.Inc()
			tb.answerCallback(ctx, update.CallbackQuery.ID, AccessDeniedMessage)
			return
		}

		data := update.CallbackQuery.Data
		orderID := data[strings.Index(data, "_order_")+len("_order_"):]

		order, err := tb.orders.UpdateStatus(ctx, orderID, newStatus)
		if err != nil {
			if errors.Is(err, models.ErrInvalidTransition) {
				tb.answerCallback(ctx, update.CallbackQuery.ID, "❌ This order cannot go to that status")
			} else {
				tb.answerCallback(ctx, update.CallbackQuery.ID, "❌ An error occurred, please try again later")
			}
			return
		}

		tb.answerCallback(ctx, update.CallbackQuery.ID, successText)

		// Swap the management buttons to the next legal transitions.
		if update.CallbackQuery.Message.Message != nil {
			msg := update.CallbackQuery.Message.Message
			_, err := b.EditMessageReplyMarkup(ctx, &tgbot.EditMessageReplyMarkupParams{
				ChatID:      msg.Chat.ID,
				MessageID:   msg.ID,
				ReplyMarkup: orderAdminKeyboard(order.ID, order.Status),
			})
			if err != nil {
				tb.logger.Warn("Failed to update order keyboard", zap.Error(err))
			}
		}
	}
}
