package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"menstyle-shop/internal/models"
	"menstyle-shop/internal/service"
	"menstyle-shop/internal/store"
	"menstyle-shop/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains the HTTP handlers consumed by the Mini App storefront and
// the admin UI. The surface carries no authentication (the Mini App runs
// inside Telegram); privileged writes are expected to come from the admin UI
// only.
type Handler struct {
	orders   *service.OrderService
	products *service.ProductService
}

// NewHandler creates a new HTTP handler
func NewHandler(orders *service.OrderService, products *service.ProductService) *Handler {
	return &Handler{orders: orders, products: products}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine, miniAppURL string) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{miniAppURL, "http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/orders", h.createOrder)
		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)
		api.PATCH("/orders/:id/status", h.updateOrderStatus)

		api.GET("/products", h.listProducts)
		api.POST("/products", h.createProduct)
		api.GET("/products/:id", h.getProduct)
		api.PUT("/products/:id", h.updateProduct)
		api.DELETE("/products/:id", h.deleteProduct)
		api.PATCH("/products/:id/stock", h.updateStock)

		api.GET("/categories", h.listCategories)
	}
}

// healthCheck handles liveness probes
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "menstyle-shop",
		"time":    time.Now().Unix(),
	})
}

// readinessCheck handles readiness probes
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// createOrder handles checkout submissions. Required customer fields are
// enforced by binding; the submitted total is stored as-is. Repeated
// submissions create repeated orders.
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"order_id": order.ID,
	})
}

// listOrders returns every order, newest first
func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.GetAllOrders(c.Request.Context())})
}

// getOrder returns an order with its items
func (h *Handler) getOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Order not found"})
		return
	}

	items, err := h.orders.GetOrderItems(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

// updateOrderStatus applies a lifecycle transition from the admin UI
func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// listProducts returns active products, optionally filtered by category or a
// name search query
func (h *Handler) listProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, h.products.Search(ctx, query))
		return
	}
	if categoryID := c.Query("category"); categoryID != "" {
		c.JSON(http.StatusOK, h.products.ListByCategory(ctx, categoryID))
		return
	}
	c.JSON(http.StatusOK, h.products.ListProducts(ctx))
}

// getProduct returns one product by id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// createProduct inserts a new catalog product
func (h *Handler) createProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.products.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// updateProduct rewrites a catalog product
func (h *Handler) updateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	product.ID = c.Param("id")

	if err := h.products.Update(c.Request.Context(), &product); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// deleteProduct removes a catalog product
func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// updateStock sets a product's stock count
func (h *Handler) updateStock(c *gin.Context) {
	var req struct {
		StockQuantity *int `json:"stock_quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || *req.StockQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock quantity"})
		return
	}

	if err := h.products.UpdateStock(c.Request.Context(), c.Param("id"), *req.StockQuantity); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to update stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// listCategories returns all categories in display order
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.products.ListCategories(c.Request.Context()))
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
