package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menstyle-shop/config"
	"menstyle-shop/internal/api"
	"menstyle-shop/internal/bot"
	"menstyle-shop/internal/broker"
	"menstyle-shop/internal/redisclient"
	"menstyle-shop/internal/service"
	"menstyle-shop/internal/store"
	"menstyle-shop/internal/util"
	"menstyle-shop/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting menstyle-shop")

	tp, err := util.InitTracer("menstyle-shop", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrders)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	orderService := service.NewOrderService(db, eventPublisher)
	productService := service.NewProductService(db, redisClient,
		time.Duration(cfg.Shop.CatalogCacheTTLSec)*time.Second)

	shopBot, err := bot.New(cfg, orderService, productService)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram bot: %v", err)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	adminConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrders, cfg.Kafka.ConsumerGroup)
	adminWorker := worker.NewAdminNotifyWorker(adminConsumer, shopBot)
	go func() {
		if err := adminWorker.Start(workerCtx); err != nil {
			log.Printf("Admin notification worker error: %v", err)
		}
	}()

	customerConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrders, "menstyle-notify-customer")
	customerWorker := worker.NewCustomerNotifyWorker(customerConsumer, shopBot)
	go func() {
		if err := customerWorker.Start(workerCtx); err != nil {
			log.Printf("Customer notification worker error: %v", err)
		}
	}()

	go func() {
		log.Println("Starting Telegram bot")
		shopBot.Start(workerCtx)
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(orderService, productService)
	handler.SetupRoutes(router, cfg.Telegram.MiniAppURL)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	adminWorker.Stop()
	customerWorker.Stop()

	log.Println("Server exited")
}
