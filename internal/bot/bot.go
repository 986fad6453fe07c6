// Package bot routes Telegram updates (slash commands, reply-keyboard button
// text, inline callback data) to handlers composed from the order and product
// services plus the message formatter.
package bot

import (
	"context"
	"fmt"

	"menstyle-shop/config"
	"menstyle-shop/internal/format"
	"menstyle-shop/internal/models"
	"menstyle-shop/internal/service"
	"menstyle-shop/internal/util"

	tgbot "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Telegram's legacy Markdown mode. Message texts use `*`/`_` emphasis only and
// are not escaped for the stricter MarkdownV2 rules, so V2 would reject them.
const messageParseMode = tgmodels.ParseModeMarkdownV1

type Bot struct {
	cfg      *config.Config
	b        *tgbot.Bot
	orders   *service.OrderService
	products *service.ProductService
	gate     *AdminGate
	logger   *zap.Logger
}

// New creates the bot and registers the dispatch table
func New(cfg *config.Config, orders *service.OrderService, products *service.ProductService) (*Bot, error) {
	tb := &Bot{
		cfg:      cfg,
		orders:   orders,
		products: products,
		gate:     NewAdminGate(cfg.Telegram.AdminChatID),
		logger:   util.GetLogger(),
	}

	b, err := tgbot.New(cfg.Telegram.BotToken, tgbot.WithDefaultHandler(tb.handleDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	tb.b = b

	// Slash commands
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, tb.handleStart)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/help", tgbot.MatchTypeExact, tb.handleHelp)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/orders", tgbot.MatchTypeExact, tb.handleOrders)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/support", tgbot.MatchTypeExact, tb.handleSupport)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/about", tgbot.MatchTypeExact, tb.handleAbout)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/stats", tgbot.MatchTypeExact, tb.handleStats)

	// Reply-keyboard button labels
	b.RegisterHandler(tgbot.HandlerTypeMessageText, btnMyOrders, tgbot.MatchTypeExact, tb.handleOrders)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, btnSupport, tgbot.MatchTypeExact, tb.handleSupport)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, btnAbout, tgbot.MatchTypeExact, tb.handleAbout)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, btnAdminPanel, tgbot.MatchTypeExact, tb.handleAdminPanel)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, btnMainMenu, tgbot.MatchTypeExact, tb.handleStart)

	// Inline-keyboard callbacks
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "main_menu", tgbot.MatchTypeExact, tb.cbMainMenu)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "my_orders", tgbot.MatchTypeExact, tb.cbMyOrders)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "support", tgbot.MatchTypeExact, tb.cbSupport)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "about", tgbot.MatchTypeExact, tb.cbAbout)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "deals", tgbot.MatchTypeExact, tb.cbDeals)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_orders", tgbot.MatchTypeExact, tb.cbAdminOrders)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_stats", tgbot.MatchTypeExact, tb.cbAdminStats)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "view_order_", tgbot.MatchTypePrefix, tb.cbViewOrder)
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "confirm_order_", tgbot.MatchTypePrefix, tb.cbTransition(models.OrderStatusConfirmed, "✅ Order confirmed"))
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "ship_order_", tgbot.MatchTypePrefix, tb.cbTransition(models.OrderStatusShipped, "📦 Order shipped"))
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "deliver_order_", tgbot.MatchTypePrefix, tb.cbTransition(models.OrderStatusDelivered, "🎉 Order delivered"))
	b.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "cancel_order_", tgbot.MatchTypePrefix, tb.cbTransition(models.OrderStatusCancelled, "❌ Order cancelled"))

	return tb, nil
}

// Start registers the command menu and runs the long-poll loop until the
// context is cancelled.
func (tb *Bot) Start(ctx context.Context) {
	_, err := tb.b.SetMyCommands(ctx, &tgbot.SetMyCommandsParams{
		Commands: []tgmodels.BotCommand{
			{Command: "start", Description: "Main menu"},
			{Command: "orders", Description: "My orders"},
			{Command: "support", Description: "Contact support"},
			{Command: "about", Description: "About the shop"},
		},
	})
	if err != nil {
		tb.logger.Warn("Failed to register bot commands", zap.Error(err))
	}

	tb.logger.Info("Starting Telegram bot")
	tb.b.Start(ctx)
}

// sendMessage sends markdown text, logging delivery failures
func (tb *Bot) sendMessage(ctx context.Context, chatID int64, text string, markup tgmodels.ReplyMarkup) error {
	_, err := tb.b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   messageParseMode,
		ReplyMarkup: markup,
	})
	if err != nil {
		tb.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return err
}

func (tb *Bot) answerCallback(ctx context.Context, callbackID, text string) {
	_, err := tb.b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		tb.logger.Warn("Failed to answer callback query", zap.Error(err))
	}
}

// NotifyAdminOrderCreated mirrors a new order into the admin chat with the
// management keyboard. Called by the notification worker.
func (tb *Bot) NotifyAdminOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	order, err := tb.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order for admin notification: %w", err)
	}
	items, err := tb.orders.GetOrderItems(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order items for admin notification: %w", err)
	}

	text := format.OrderForAdmin(order, items)
	return tb.sendMessage(ctx, tb.cfg.Telegram.AdminChatID, text,
		orderAdminKeyboard(order.ID, order.Status))
}

// NotifyCustomerStatusChanged tells the customer their order moved through the
// lifecycle. Orders placed outside Telegram carry no user id and are skipped.
func (tb *Bot) NotifyCustomerStatusChanged(ctx context.Context, event *models.OrderStatusChangedEvent) error {
	if event.TelegramUserID == 0 {
		return nil
	}

	status := models.StatusDisplay(event.NewStatus)
	text := fmt.Sprintf("%s Your order *#%s* is now: *%s*",
		status.Emoji, format.ShortID(event.OrderID), status.Label)
	return tb.sendMessage(ctx, event.TelegramUserID, text, nil)
}
