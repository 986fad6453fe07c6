package worker

import (
	"context"

	"menstyle-shop/internal/broker"
	"menstyle-shop/internal/models"
	"menstyle-shop/internal/util"

	"go.uber.org/zap"
)

// Notifier delivers order notifications to Telegram chats. The bot
// implements it.
type Notifier interface {
	NotifyAdminOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error
	NotifyCustomerStatusChanged(ctx context.Context, event *models.OrderStatusChangedEvent) error
}

// AdminNotifyWorker consumes OrderCreated events and mirrors each new order
// into the admin chat with management buttons.
type AdminNotifyWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewAdminNotifyWorker creates a new admin notification worker
func NewAdminNotifyWorker(consumer *broker.Consumer, notifier Notifier) *AdminNotifyWorker {
	logger := util.GetLogger()

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderCreated(func(ctx context.Context, event *models.OrderCreatedEvent) error {
		if err := notifier.NotifyAdminOrderCreated(ctx, event); err != nil {
			util.NotificationsFailedTotal.WithLabelValues("admin_order_created").Inc()
			logger.Error("Failed to notify admin about new order",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
			return err
		}
		util.NotificationsSentTotal.WithLabelValues("admin_order_created").Inc()
		return nil
	})

	return &AdminNotifyWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}
}

// Start starts the worker
func (w *AdminNotifyWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting admin notification worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *AdminNotifyWorker) Stop() error {
	w.logger.Info("Stopping admin notification worker")
	return w.consumer.Close()
}

// CustomerNotifyWorker consumes OrderStatusChanged events and tells the
// customer their order moved.
type CustomerNotifyWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewCustomerNotifyWorker creates a new customer notification worker
func NewCustomerNotifyWorker(consumer *broker.Consumer, notifier Notifier) *CustomerNotifyWorker {
	logger := util.GetLogger()

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderStatusChanged(func(ctx context.Context, event *models.OrderStatusChangedEvent) error {
		if event.TelegramUserID == 0 {
			// Orders placed outside Telegram have no chat to notify.
			return nil
		}
		if err := notifier.NotifyCustomerStatusChanged(ctx, event); err != nil {
			util.NotificationsFailedTotal.WithLabelValues("customer_status_changed").Inc()
			logger.Error("Failed to notify customer about status change",
				zap.String("order_id", event.OrderID),
				zap.Int64("telegram_user_id", event.TelegramUserID),
				zap.Error(err))
			return err
		}
		util.NotificationsSentTotal.WithLabelValues("customer_status_changed").Inc()
		return nil
	})

	return &CustomerNotifyWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}
}

// Start starts the worker
func (w *CustomerNotifyWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting customer notification worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *CustomerNotifyWorker) Stop() error {
	w.logger.Info("Stopping customer notification worker")
	return w.consumer.Close()
}
